// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package submission handles artist applications.

An application arrives through the public form with a proposed slug, contact
details, and sample works. It sits in a review queue until an admin approves
it, which publishes a full artist overlay entry, or rejects it with a reason.
The queue is a single JSON document; uploaded files live in blob storage
under the submissions/ prefix and stay there after approval.
*/
package submission

import "time"

// Submission lifecycle states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Statuses lists every valid submission status.
var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

// Work is one sample work attached to an application. FileName is the
// codec-encoded stored name; its basename keys the portfolio entry written
// on approval.
type Work struct {
	FileName     string `json:"fileName"`
	URL          string `json:"url"`
	Brand        string `json:"brand,omitempty"`
	ProjectTitle string `json:"projectTitle,omitempty"`
	Type         string `json:"type"`
	VideoURL     string `json:"videoUrl,omitempty"`
}

// Submission is one artist application.
type Submission struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`

	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`

	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Works           []Work `json:"works"`

	RejectionReason string `json:"rejectionReason,omitempty"`
}

// Field names used in validation messages.
const (
	FieldSlug      = "slug"
	FieldName      = "name"
	FieldSpecialty = "specialty"
	FieldBio       = "bio"
	FieldInstagram = "instagram"
	FieldEmail     = "email"
	FieldStatus    = "status"
	FieldAction    = "action"
	FieldWorks     = "works"
	FieldVideoURL  = "videoUrl"
	FieldType      = "type"
)
