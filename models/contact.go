// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is a single persisted contact record.
//
// ID is assigned by the store and is empty until the record is persisted.
// Image holds an opaque storage reference when written and a directly
// fetchable URL when read back from a listing. Nil means no image.
type Contact struct {
	ID string `json:"id,omitempty"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	LastContact string `json:"lastContact"`

	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Birthday   string `json:"birthday,omitempty"`
	Notes      string `json:"notes,omitempty"`

	Image *string `json:"image,omitempty"`
}

// FullName returns "FirstName LastName".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Fields returns the writable part of the contact.
func (c Contact) Fields() ContactFields {
	return ContactFields{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		LastContact: c.LastContact,
		Phone:       c.Phone,
		Company:     c.Company,
		Occupation:  c.Occupation,
		Birthday:    c.Birthday,
		Notes:       c.Notes,
	}
}

// ContactFields is the payload accepted by create. It deliberately has no ID
// and no Image: identifiers come from the store and images are attached
// through a dedicated link operation.
type ContactFields struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	LastContact string `json:"lastContact"`

	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Birthday   string `json:"birthday,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Patch converts the fields into a patch that overwrites every field.
func (f ContactFields) Patch() ContactPatch {
	return ContactPatch{
		FirstName:   &f.FirstName,
		LastName:    &f.LastName,
		Email:       &f.Email,
		LastContact: &f.LastContact,
		Phone:       &f.Phone,
		Company:     &f.Company,
		Occupation:  &f.Occupation,
		Birthday:    &f.Birthday,
		Notes:       &f.Notes,
	}
}

// ContactPatch is a partial update. Only non-nil fields are written.
type ContactPatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	LastContact *string `json:"lastContact,omitempty"`

	Phone      *string `json:"phone,omitempty"`
	Company    *string `json:"company,omitempty"`
	Occupation *string `json:"occupation,omitempty"`
	Birthday   *string `json:"birthday,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ContactPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.LastContact == nil && p.Phone == nil && p.Company == nil &&
		p.Occupation == nil && p.Birthday == nil && p.Notes == nil
}

// Apply returns c with every non-nil patch field written over it.
func (p ContactPatch) Apply(c Contact) Contact {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&c.FirstName, p.FirstName)
	set(&c.LastName, p.LastName)
	set(&c.Email, p.Email)
	set(&c.LastContact, p.LastContact)
	set(&c.Phone, p.Phone)
	set(&c.Company, p.Company)
	set(&c.Occupation, p.Occupation)
	set(&c.Birthday, p.Birthday)
	set(&c.Notes, p.Notes)

	return c
}

// CreatedContact is the response body of a successful create.
type CreatedContact struct {
	ID string `json:"id"`
}
