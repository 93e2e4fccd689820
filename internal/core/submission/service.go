// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package submission

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/lumestudio/lume-api/internal/core/artist"
	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/mail"
	"github.com/lumestudio/lume-api/internal/platform/validate"
	"github.com/lumestudio/lume-api/internal/storage/blob"
	"github.com/lumestudio/lume-api/pkg/field"
	"github.com/lumestudio/lume-api/pkg/medianame"
	"github.com/lumestudio/lume-api/pkg/slice"
	"github.com/lumestudio/lume-api/pkg/slug"
	"github.com/lumestudio/lume-api/pkg/uuidv7"
)

// Service runs the application queue: intake from the public form, admin
// review, and publication into the artist roster on approval.
type Service struct {
	store      *Store
	blobs      blob.Store
	artists    *artist.Service
	mailer     mail.Mailer
	adminEmail string
	logger     *slog.Logger
}

// NewService wires the queue. adminEmail receives new-application
// notifications; sending is best-effort throughout.
func NewService(store *Store, blobs blob.Store, artists *artist.Service, mailer mail.Mailer, adminEmail string, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		blobs:      blobs,
		artists:    artists,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// FileUpload is one incoming multipart file.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// WorkUpload is one sample work in an application.
type WorkUpload struct {
	Brand        string
	ProjectTitle string
	Type         string
	VideoURL     string
	File         FileUpload
}

// CreateInput is the public application payload.
type CreateInput struct {
	Slug      string
	Name      string
	Specialty string
	Bio       string
	Instagram string
	Email     string
	Phone     string

	Profile *FileUpload
	Works   []WorkUpload
}

// Create validates and stores a new application. The returned flag reports
// whether the admin notification email went out; a failed send never fails
// the application itself.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Submission, bool, error) {
	// Applicants may leave the slug blank; suggest one from the name.
	if input.Slug == "" {
		input.Slug = slug.From(input.Name)
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldSlug, input.Slug).
		Slug(FieldSlug, input.Slug).
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120).
		OneOf(FieldSpecialty, input.Specialty, artist.Specialties...).
		MaxLen(FieldBio, input.Bio, 2000).
		Instagram(FieldInstagram, input.Instagram).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Custom(FieldWorks, len(input.Works) == 0, "At least one sample work is required")
	for i, work := range input.Works {
		prefix := fmt.Sprintf("works[%d].", i)
		validator.
			OneOf(prefix+FieldType, work.Type, medianame.TypePhoto, medianame.TypeVideo).
			VideoURL(prefix+FieldVideoURL, work.VideoURL)
	}
	if err := validator.Err(); err != nil {
		return nil, false, err
	}

	if input.Profile != nil {
		if err := medianame.AllowedUpload(input.Profile.FileName, input.Profile.ContentType, input.Profile.Size, medianame.TypePhoto); err != nil {
			return nil, false, apperr.ValidationError(err.Error())
		}
	}
	for _, work := range input.Works {
		if err := medianame.AllowedUpload(work.File.FileName, work.File.ContentType, work.File.Size, work.Type); err != nil {
			return nil, false, apperr.ValidationError(err.Error())
		}
	}

	// The slug must be free on both sides: no published artist and no
	// application still in review.
	taken, err := service.artists.HasArtist(ctx, input.Slug)
	if err != nil {
		return nil, false, err
	}
	if taken {
		return nil, false, apperr.DuplicateSlug(input.Slug)
	}
	submissions := service.store.Load(ctx)
	for _, existing := range submissions {
		if existing.Slug == input.Slug && existing.Status == StatusPending {
			return nil, false, apperr.DuplicateSlug(input.Slug)
		}
	}

	created := &Submission{
		ID:        "sub-" + uuidv7.New(),
		CreatedAt: time.Now().UTC(),
		Status:    StatusPending,
		Slug:      input.Slug,
		Name:      input.Name,
		Specialty: input.Specialty,
		Bio:       input.Bio,
		Instagram: input.Instagram,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	prefix := "submissions/" + input.Slug + "/"

	if input.Profile != nil {
		ext := strings.ToLower(path.Ext(input.Profile.FileName))
		url, err := service.blobs.Put(ctx, prefix+medianame.ProfileBaseName+ext, input.Profile.Content, input.Profile.ContentType)
		if err != nil {
			return nil, false, apperr.StoreFailure("profile image", err)
		}
		created.ProfileImageURL = url
	}

	for _, work := range input.Works {
		storedName := medianame.Encode(work.Brand, work.ProjectTitle, work.Type, work.File.FileName)
		url, err := service.blobs.Put(ctx, prefix+storedName, work.File.Content, work.File.ContentType)
		if err != nil {
			return nil, false, apperr.StoreFailure("sample work", err)
		}
		created.Works = append(created.Works, Work{
			FileName:     storedName,
			URL:          url,
			Brand:        work.Brand,
			ProjectTitle: work.ProjectTitle,
			Type:         work.Type,
			VideoURL:     work.VideoURL,
		})
	}

	submissions = append(submissions, *created)
	if err := service.store.Save(ctx, submissions, "Add submission from "+input.Slug); err != nil {
		return nil, false, apperr.StoreFailure("submission", err)
	}

	emailSent := service.notifyAdmin(ctx, created)

	service.logger.InfoContext(ctx, "submission_created",
		slog.String("id", created.ID),
		slog.String("slug", created.Slug),
	)
	return created, emailSent, nil
}

// List returns submissions newest-first, optionally filtered by status.
func (service *Service) List(ctx context.Context, status string) ([]Submission, error) {
	if status != "" {
		validator := &validate.Validator{}
		validator.OneOf(FieldStatus, status, Statuses...)
		if err := validator.Err(); err != nil {
			return nil, err
		}
	}

	submissions := service.store.Load(ctx)

	filtered := slice.Filter(submissions, func(entry Submission) bool {
		return status == "" || entry.Status == status
	})

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

// Approve publishes a pending application as a full artist overlay entry and
// flips the submission to approved. If publishing fails the submission stays
// pending so the admin can retry.
func (service *Service) Approve(ctx context.Context, id string) (*Submission, error) {
	submissions := service.store.Load(ctx)

	at := indexOf(submissions, id)
	if at < 0 {
		return nil, apperr.NotFound("Submission")
	}
	entry := &submissions[at]
	if entry.Status != StatusPending {
		return nil, apperr.ValidationError("Only pending submissions can be approved")
	}

	if err := service.artists.PublishEntry(ctx, entry.Slug, overlayEntry(entry)); err != nil {
		return nil, err
	}

	entry.Status = StatusApproved
	entry.RejectionReason = ""
	if err := service.store.Save(ctx, submissions, "Approve submission "+id); err != nil {
		// The artist is already published; surface the queue failure so
		// the admin knows the status flip did not stick.
		return nil, apperr.StoreFailure("submission", err)
	}

	service.notifyApplicant(ctx, entry, "Your application to LUME Studio was approved",
		"Hi "+entry.Name+",\n\nYour application has been approved. Your profile is now live on lume.studio.\n\n— LUME Studio")

	service.logger.InfoContext(ctx, "submission_approved",
		slog.String("id", id),
		slog.String("slug", entry.Slug),
	)
	return entry, nil
}

// Reject marks a pending application rejected, recording the reason.
func (service *Service) Reject(ctx context.Context, id, reason string) (*Submission, error) {
	submissions := service.store.Load(ctx)

	at := indexOf(submissions, id)
	if at < 0 {
		return nil, apperr.NotFound("Submission")
	}
	entry := &submissions[at]
	if entry.Status != StatusPending {
		return nil, apperr.ValidationError("Only pending submissions can be rejected")
	}

	entry.Status = StatusRejected
	entry.RejectionReason = reason
	if err := service.store.Save(ctx, submissions, "Reject submission "+id); err != nil {
		return nil, apperr.StoreFailure("submission", err)
	}

	text := "Hi " + entry.Name + ",\n\nThank you for applying to LUME Studio. We are not able to accept your application at this time."
	if reason != "" {
		text += "\n\nReviewer note: " + reason
	}
	text += "\n\n— LUME Studio"
	service.notifyApplicant(ctx, entry, "Your application to LUME Studio", text)

	service.logger.InfoContext(ctx, "submission_rejected",
		slog.String("id", id),
		slog.String("slug", entry.Slug),
	)
	return entry, nil
}

// overlayEntry builds the complete artist overlay entry an approval
// publishes: every submitted field plus one full portfolio entry per work,
// keyed by the stored file's base name.
func overlayEntry(entry *Submission) *artist.ArtistOverlay {
	published := &artist.ArtistOverlay{
		Name:      field.Set(entry.Name),
		Specialty: field.Set(entry.Specialty),
	}
	if entry.Bio != "" {
		published.Bio = field.Set(entry.Bio)
	}
	if entry.Instagram != "" {
		published.Instagram = field.Set(entry.Instagram)
	}
	if entry.Email != "" {
		published.Email = field.Set(entry.Email)
	}
	if entry.Phone != "" {
		published.Phone = field.Set(entry.Phone)
	}
	if entry.ProfileImageURL != "" {
		published.ProfileImageURL = field.Set(entry.ProfileImageURL)
	}

	if len(entry.Works) > 0 {
		published.Portfolio = make(map[string]*artist.WorkOverlay, len(entry.Works))
		for _, work := range entry.Works {
			base := medianame.StripExt(work.FileName)
			decoded := medianame.Decode(base, entry.Slug)

			override := &artist.WorkOverlay{
				URL:          field.Set(work.URL),
				Alt:          field.Set(decoded.Alt),
				Brand:        field.Set(decoded.Brand),
				ProjectTitle: field.Set(decoded.ProjectTitle),
				Type:         field.Set(work.Type),
			}
			if work.VideoURL != "" {
				override.VideoURL = field.Set(work.VideoURL)
			}
			published.Portfolio[entry.Slug+"-"+base] = override
		}
	}
	return published
}

func (service *Service) notifyAdmin(ctx context.Context, entry *Submission) bool {
	if service.adminEmail == "" {
		return false
	}
	err := service.mailer.Send(ctx, mail.Message{
		To:      service.adminEmail,
		Subject: "New artist application: " + entry.Name,
		Text: "A new application arrived.\n\n" +
			"Name: " + entry.Name + "\n" +
			"Slug: " + entry.Slug + "\n" +
			"Specialty: " + entry.Specialty + "\n" +
			"Email: " + entry.Email + "\n" +
			fmt.Sprintf("Works: %d\n", len(entry.Works)),
		ReplyTo: entry.Email,
	})
	if err != nil {
		service.logger.WarnContext(ctx, "submission_notify_failed",
			slog.String("id", entry.ID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

func (service *Service) notifyApplicant(ctx context.Context, entry *Submission, subject, text string) {
	if entry.Email == "" {
		return
	}
	err := service.mailer.Send(ctx, mail.Message{
		To:      entry.Email,
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		service.logger.WarnContext(ctx, "submission_outcome_email_failed",
			slog.String("id", entry.ID),
			slog.String("error", err.Error()),
		)
	}
}

func indexOf(submissions []Submission, id string) int {
	for i := range submissions {
		if submissions[i].ID == id {
			return i
		}
	}
	return -1
}
