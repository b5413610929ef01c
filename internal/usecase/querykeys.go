package usecase

// Table names as they appear in row-change events.
const (
	articlesTable     = "articles"
	commentsTable     = "comments"
	likesTable        = "article_likes"
	donationsTable    = "donations"
	servicesTable     = "services"
	skillsTable       = "skills"
	educationTable    = "education"
	projectsTable     = "projects"
	testimonialsTable = "testimonials"
	contactTable      = "contact_messages"
)

// Query keys shared between readers (cache reads) and writers (invalidation
// after a mutation or row-change event).

func messagesKey(conversationID string) string {
	return "messages:" + conversationID
}

func conversationsKey(status string) string {
	if status == "" {
		return "conversations:all"
	}
	return "conversations:" + status
}

func articlesKey(publishedOnly bool) string {
	if publishedOnly {
		return "articles:published"
	}
	return "articles:all"
}

func articleKey(slug string) string {
	return "article:" + slug
}

func commentsKey(articleID string) string {
	return "comments:" + articleID
}

const (
	servicesKey     = "services"
	skillsKey       = "skills"
	educationKey    = "education"
	projectsKey     = "projects"
	testimonialsKey = "testimonials"
	donationsKey    = "donations"
)
