package handlers

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/photo"
	"github.com/choco-radar/site/post"
	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/ui"
)

// HandleNewPost publishes an owner announcement, replacing the store's
// previous one. An attached photo is webp-converted and uploaded
// before the post goes live.
func HandleNewPost(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}
	if err := requireStoreOwner(c, storeID); err != nil {
		return err
	}

	title := c.FormValue("title")
	if title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}
	body := c.FormValue("body")

	imageKey := ""
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		if !photo.Enabled() {
			return fiber.NewError(fiber.StatusServiceUnavailable, "photo uploads are not available")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return err
		}
		raw, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return err
		}

		processed, err := photo.Process(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not read the uploaded image")
		}
		imageKey, err = photo.Upload(storeID, processed)
		if err != nil {
			log.Printf("[post] photo upload for store %d failed: %v", storeID, err)
			return fiber.NewError(fiber.StatusBadGateway, "photo upload failed")
		}
	}

	if _, err := post.Publish(storeID, title, body, imageKey); err != nil {
		return err
	}

	return HandleStoreDetail(c)
}

// HandleDeletePost removes the store's announcement.
func HandleDeletePost(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}
	if err := requireStoreOwner(c, storeID); err != nil {
		return err
	}

	if err := post.Delete(storeID); err != nil {
		return err
	}
	return HandleStoreDetail(c)
}

// HandleRecentPosts renders the home page announcement gallery.
func HandleRecentPosts(c *fiber.Ctx) error {
	posts, err := post.Recent(10)
	if err != nil {
		return err
	}

	names := make(map[int]string, len(posts))
	for _, p := range posts {
		if _, ok := names[p.StoreID]; ok {
			continue
		}
		if s, err := store.GetStore(p.StoreID); err == nil {
			names[p.StoreID] = s.Name
		}
	}

	return render(c, ui.PostsGallery(posts, names))
}
