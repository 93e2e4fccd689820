// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package medianame encodes and decodes portfolio metadata into media file
names.

Uploaded works carry their brand, project title, and media type in the stored
base name, joined by a double-underscore delimiter:

	beymen__fw25-campaign__photo.jpg

Decoding is total: any base name produces a displayable record, falling back
to a legacy single-underscore scheme and finally to the raw base name, so a
stray file in an artist folder never breaks the gallery.
*/
package medianame

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Delimiter separates the brand, project, and type segments of a base name.
const Delimiter = "__"

// ProfileBaseName is the reserved base name for an artist's profile image.
const ProfileBaseName = "profile"

// TypePhoto and TypeVideo are the two media types a work can carry.
const (
	TypePhoto = "photo"
	TypeVideo = "video"
)

// MaxFileSize is the upload size ceiling (50MB).
const MaxFileSize = 50 * 1024 * 1024

// Allowed upload extensions and MIME types, lowercase with leading dot.
var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
	VideoExtensions = []string{".mp4", ".mov", ".webm"}

	ImageMIMEs = []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"}
	VideoMIMEs = []string{"video/mp4", "video/quicktime", "video/webm"}
)

// scanExtensions is the set accepted by the media folder scan. It includes
// legacy .mov uploads but not .webm, matching what earlier uploads produced.
var scanExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	".mp4": true, ".mov": true,
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	acronym         = regexp.MustCompile(`^[A-Z0-9]+$`)
	labelSeparator  = regexp.MustCompile(`[-_\s]+`)
)

// Safe lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen, trimming leading and trailing hyphens.
func Safe(s string) string {
	out := nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(out, "-")
}

// Encode builds the stored file name for an upload.
//
// When both brand and project title are present the base name is
// safe(brand)__safe(project)__type; otherwise a timestamped fallback
// guarantees uniqueness. The extension comes from the original upload,
// or a type default when the original has none.
func Encode(brand, projectTitle, mediaType, originalName string) string {
	base := EncodeBase(brand, projectTitle, mediaType)

	ext := strings.ToLower(path.Ext(originalName))
	if ext == "" {
		if mediaType == TypeVideo {
			ext = ".mp4"
		} else {
			ext = ".jpg"
		}
	}

	return base + ext
}

// EncodeBase builds the extension-less base name for an upload.
func EncodeBase(brand, projectTitle, mediaType string) string {
	safeBrand := Safe(brand)
	safeProject := Safe(projectTitle)

	if safeBrand == "" || safeProject == "" {
		return fmt.Sprintf("upload-%d", time.Now().UnixMilli())
	}

	return safeBrand + Delimiter + safeProject + Delimiter + mediaType
}

// Decoded is the metadata recovered from a stored base name.
type Decoded struct {
	Brand        string
	ProjectTitle string
	Alt          string
	Type         string
}

// Decode recovers brand, project title, and type from a stored base name
// (extension already stripped). It never fails: when no structure is
// recoverable the whole base name becomes the alt text and project title,
// and the owning artist's slug becomes the brand.
func Decode(base, artistSlug string) Decoded {
	var brandRaw, projectRaw, typeRaw string

	parts := strings.Split(base, Delimiter)
	if len(parts) >= 2 {
		brandRaw = parts[0]
		projectRaw = parts[1]
		if len(parts) >= 3 {
			typeRaw = parts[2]
		}
	} else {
		// Legacy scheme: brand_project_tokens with an optional trailing
		// "video" marker.
		tokens := strings.Split(base, "_")
		if len(tokens) >= 2 && tokens[0] != "" {
			brandRaw = tokens[0]
			rest := tokens[1:]
			if strings.EqualFold(rest[len(rest)-1], TypeVideo) {
				typeRaw = rest[len(rest)-1]
				rest = rest[:len(rest)-1]
			}
			projectRaw = strings.Join(rest, "_")
		}
	}

	if brandRaw == "" || projectRaw == "" {
		return Decoded{
			Brand:        FormatLabel(artistSlug),
			ProjectTitle: FormatLabel(base),
			Alt:          FormatLabel(base),
			Type:         TypePhoto,
		}
	}

	brand := FormatLabel(brandRaw)
	projectTitle := FormatLabel(projectRaw)

	mediaType := TypePhoto
	if strings.EqualFold(typeRaw, TypeVideo) {
		mediaType = TypeVideo
	}

	if projectTitle == "" {
		projectTitle = brand
	}
	if brand == "" {
		brand = FormatLabel(artistSlug)
	}

	return Decoded{
		Brand:        brand,
		ProjectTitle: projectTitle,
		Alt:          strings.TrimSpace(FormatLabel(brandRaw) + " " + FormatLabel(projectRaw)),
		Type:         mediaType,
	}
}

// FormatLabel converts a hyphen/underscore-joined token sequence into a
// display label. Segments of three characters or fewer and segments made
// solely of uppercase letters and digits are treated as acronyms and
// uppercased; every other segment is capitalized, so a lowercase season
// code like "fw25" renders as "Fw25". Empty input yields an empty string.
func FormatLabel(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}

	segments := labelSeparator.Split(cleaned, -1)
	formatted := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if utf8.RuneCountInString(segment) <= 3 || acronym.MatchString(segment) {
			formatted = append(formatted, strings.ToUpper(segment))
			continue
		}
		formatted = append(formatted, capitalize(segment))
	}

	return strings.Join(formatted, " ")
}

// StripExt removes the extension from a file name.
func StripExt(fileName string) string {
	return strings.TrimSuffix(fileName, path.Ext(fileName))
}

// IsProfileImage reports whether fileName is an artist profile image
// (base name "profile", any extension).
func IsProfileImage(fileName string) bool {
	return strings.HasPrefix(strings.ToLower(fileName), ProfileBaseName+".")
}

// ScannableExtension reports whether the media folder scan accepts files
// with the given name's extension.
func ScannableExtension(fileName string) bool {
	return scanExtensions[strings.ToLower(path.Ext(fileName))]
}

// AllowedUpload validates an upload's extension, MIME type, and size for the
// given media type. Video works accept image files too, since a video work's
// stored file may be a thumbnail for an external video link.
func AllowedUpload(fileName, mimeType string, size int64, mediaType string) error {
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if size > MaxFileSize {
		return fmt.Errorf("file exceeds the %dMB limit", MaxFileSize/1024/1024)
	}

	extensions := ImageExtensions
	mimes := ImageMIMEs
	if mediaType == TypeVideo {
		extensions = append(append([]string{}, ImageExtensions...), VideoExtensions...)
		mimes = append(append([]string{}, ImageMIMEs...), VideoMIMEs...)
	}

	ext := strings.ToLower(path.Ext(fileName))
	if !contains(extensions, ext) {
		return fmt.Errorf("file type not allowed (allowed: %s)", strings.Join(extensions, ", "))
	}
	if mimeType != "" && !contains(mimes, strings.ToLower(mimeType)) {
		return fmt.Errorf("MIME type not allowed: %s", mimeType)
	}

	return nil
}

func capitalize(segment string) string {
	first, width := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(first)) + strings.ToLower(segment[width:])
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
