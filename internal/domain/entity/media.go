package entity

import "time"

// MediaFile records an uploaded object so the back-office can list and
// clean up bucket contents later.
type MediaFile struct {
	ID          string    `json:"id" firestore:"id"`
	URL         string    `json:"url" firestore:"url"`
	ObjectName  string    `json:"object_name" firestore:"objectName"`
	Folder      string    `json:"folder" firestore:"folder"`
	Filename    string    `json:"filename" firestore:"filename"`
	ContentType string    `json:"content_type" firestore:"contentType"`
	Size        int64     `json:"size" firestore:"size"`
	UploadedBy  string    `json:"uploaded_by" firestore:"uploadedBy"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
