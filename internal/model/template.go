package model

// FormTemplate is a predefined form definition users can instantiate.
// Templates are static data; instantiating one just pre-fills a
// CreateFormRequest.
type FormTemplate struct {
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
}

// Templates is the built-in template catalog.
var Templates = []FormTemplate{
	{
		Slug:        "contact",
		Name:        "Contact Form",
		Description: "Collect contact requests with name, email and message.",
		Questions: []QuestionInput{
			{Text: "Your name", Kind: string(KindShortText), Required: true},
			{Text: "Email address", Kind: string(KindShortText), Required: true},
			{Text: "How can we help?", Kind: string(KindLongText), Required: true},
		},
	},
	{
		Slug:        "feedback",
		Name:        "Feedback Survey",
		Description: "Gather product or event feedback with ratings and comments.",
		Questions: []QuestionInput{
			{Text: "How satisfied were you overall?", Kind: string(KindMultipleChoice), Required: true,
				Options: []string{"Very satisfied", "Satisfied", "Neutral", "Dissatisfied", "Very dissatisfied"}},
			{Text: "Which aspects did you like?", Kind: string(KindCheckbox), Required: false,
				Options: []string{"Content", "Organization", "Venue", "Speakers", "Other"}},
			{Text: "Anything we should improve?", Kind: string(KindLongText), Required: false},
		},
	},
	{
		Slug:        "registration",
		Name:        "Event Registration",
		Description: "Register attendees with their details and preferences.",
		Questions: []QuestionInput{
			{Text: "Full name", Kind: string(KindShortText), Required: true},
			{Text: "Organization", Kind: string(KindShortText), Required: false},
			{Text: "Attendance date", Kind: string(KindDate), Required: true},
			{Text: "Number of guests", Kind: string(KindNumber), Required: false},
			{Text: "Dietary preference", Kind: string(KindDropdown), Required: false,
				Options: []string{"None", "Vegetarian", "Vegan", "Gluten-free"}},
		},
	},
	{
		Slug:        "rsvp",
		Name:        "RSVP",
		Description: "Quick yes/no attendance confirmation.",
		Questions: []QuestionInput{
			{Text: "Will you attend?", Kind: string(KindMultipleChoice), Required: true,
				Options: []string{"Yes", "No", "Maybe"}},
			{Text: "Leave a note for the host", Kind: string(KindLongText), Required: false},
		},
	},
}

// TemplateBySlug returns the template with the given slug, or nil.
func TemplateBySlug(slug string) *FormTemplate {
	for i := range Templates {
		if Templates[i].Slug == slug {
			return &Templates[i]
		}
	}
	return nil
}
