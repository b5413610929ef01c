package entity

import "time"

// Marketing-page rows managed from the admin back-office.

type ServiceItem struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Icon        string    `json:"icon,omitempty" firestore:"icon,omitempty"`
	SortOrder   int       `json:"sort_order" firestore:"sortOrder"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Skill struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Category  string    `json:"category,omitempty" firestore:"category,omitempty"`
	Level     int       `json:"level" firestore:"level"` // 0-100
	SortOrder int       `json:"sort_order" firestore:"sortOrder"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Education struct {
	ID          string    `json:"id" firestore:"id"`
	Institution string    `json:"institution" firestore:"institution"`
	Degree      string    `json:"degree" firestore:"degree"`
	Field       string    `json:"field,omitempty" firestore:"field,omitempty"`
	StartYear   int       `json:"start_year" firestore:"startYear"`
	EndYear     int       `json:"end_year,omitempty" firestore:"endYear,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Project struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	ImageURL    string    `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
	LiveURL     string    `json:"live_url,omitempty" firestore:"liveURL,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty" firestore:"repoURL,omitempty"`
	Tags        []string  `json:"tags,omitempty" firestore:"tags,omitempty"`
	Featured    bool      `json:"featured" firestore:"featured"`
	SortOrder   int       `json:"sort_order" firestore:"sortOrder"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Testimonial struct {
	ID        string    `json:"id" firestore:"id"`
	Author    string    `json:"author" firestore:"author"`
	Company   string    `json:"company,omitempty" firestore:"company,omitempty"`
	Quote     string    `json:"quote" firestore:"quote"`
	AvatarURL string    `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
	Approved  bool      `json:"approved" firestore:"approved"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
