package form

import (
	"encoding/base64"

	"github.com/MKhiriev/go-contacts/models"
)

// LocalImage is an image chosen by the user that has not been uploaded yet.
type LocalImage struct {
	Data        []byte
	ContentType string
}

// Draft is the working copy of a contact while it is being added or edited.
type Draft struct {
	// ID is set in edit mode and empty in add mode.
	ID     string
	Fields models.ContactFields

	// Preview is what the form shows as the contact image: the stored image
	// URL, or a data: URI of the pending local image.
	Preview string

	// Image is the pending local image, nil when nothing is pending.
	Image *LocalImage

	Dirty bool
}

// EditMode reports whether the draft belongs to a persisted contact.
func (d Draft) EditMode() bool {
	return d.ID != ""
}

func (d Draft) clone() Draft {
	if d.Image != nil {
		img := *d.Image
		img.Data = append([]byte(nil), d.Image.Data...)
		d.Image = &img
	}
	return d
}

func dataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
