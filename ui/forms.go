package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/user"
)

func formInput(name, label, inputType string, required bool) g.Node {
	return Div(
		Label(Class("block text-sm text-gray-600 mb-1"), For(name), g.Text(label)),
		Input(
			Type(inputType),
			Name(name),
			ID(name),
			Class("border rounded p-2 w-full"),
			g.If(required, Required()),
		),
	)
}

func submitButton(label string) g.Node {
	return Button(
		Type("submit"),
		Class("px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700"),
		g.Text(label),
	)
}

// RegisterPage is step one of owner onboarding: account details, then
// an SMS code.
func RegisterPage(currentUser *user.User) g.Node {
	return Page("Register", currentUser, []g.Node{
		pageHeader("Owner registration"),
		Form(
			Class("flex flex-col gap-4 max-w-sm"),
			hx.Post("/api/register"),
			hx.Target("body"),
			hx.Swap("innerHTML"),
			formInput("name", "Business name", "text", true),
			formInput("phone", "Phone number", "tel", true),
			formInput("password", "Password", "password", true),
			formInput("password_confirm", "Confirm password", "password", true),
			submitButton("Send verification code"),
		),
	})
}

// VerifyPage collects the SMS code sent during registration.
func VerifyPage(phone string) g.Node {
	return Page("Verify", nil, []g.Node{
		pageHeader("Check your phone"),
		P(Class("text-gray-600 mb-4"), g.Textf("We sent a 6-digit code to %s.", phone)),
		Form(
			Class("flex flex-col gap-4 max-w-sm"),
			hx.Post("/api/register/verify"),
			hx.Target("body"),
			hx.Swap("innerHTML"),
			Input(Type("hidden"), Name("phone"), Value(phone)),
			formInput("code", "Verification code", "text", true),
			submitButton("Verify"),
		),
	})
}

// LoginPage is the owner login form.
func LoginPage(currentUser *user.User) g.Node {
	return Page("Log in", currentUser, []g.Node{
		pageHeader("Owner login"),
		Form(
			Class("flex flex-col gap-4 max-w-sm"),
			hx.Post("/api/login"),
			hx.Target("body"),
			hx.Swap("innerHTML"),
			formInput("phone", "Phone number", "tel", true),
			formInput("password", "Password", "password", true),
			submitButton("Log in"),
		),
		P(
			Class("mt-4 text-sm text-gray-600"),
			g.Text("No account yet? "),
			A(Href("/register"), Class("text-blue-600 hover:underline"), g.Text("Register")),
		),
	})
}

// ClaimForm is the self-claim form for an unclaimed store.
func ClaimForm(s store.AnnotatedStore) g.Node {
	return Page("Claim store", nil, []g.Node{
		pageHeader(fmt.Sprintf("Claim %s", s.Name)),
		P(Class("text-gray-600 mb-4"),
			g.Text("Verification is immediate. You'll be able to update stock and post announcements right away.")),
		Form(
			Class("flex flex-col gap-4 max-w-sm"),
			hx.Post(fmt.Sprintf("/api/store/%d/claim", s.ID)),
			hx.Target("body"),
			hx.Swap("innerHTML"),
			formInput("business_reg_no", "Business registration number", "text", true),
			formInput("contact_email", "Contact email", "email", false),
			formInput("contact_phone", "Contact phone", "tel", false),
			submitButton("Claim this store"),
		),
	})
}
