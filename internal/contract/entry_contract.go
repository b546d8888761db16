package contract

import "phhblog/internal/domain/entity"

// EntryForm is the urlencoded body of POST /entry/post/add. The field
// names mirror the form controls: `entry` carries the body text and
// `tag` the chosen tag id, empty when no tag was picked.
type EntryForm struct {
	Title string `form:"title" validate:"required,max=120"`
	Tag   string `form:"tag" validate:"omitempty,number"`
	Entry string `form:"entry" validate:"required"`
}

// EditEntryForm is the urlencoded body of POST /entry/edit.
type EditEntryForm struct {
	ID    int    `form:"id" validate:"required,gt=0"`
	Title string `form:"title" validate:"required,max=120"`
	Tag   string `form:"tag" validate:"omitempty,number"`
	Entry string `form:"entry" validate:"required"`
}

// TagLink pairs a tag with the query-string encoding of its own
// fields, used by the listing view to build filter links.
type TagLink struct {
	Tag   *entity.Tag
	Query string
}

type ListingPage struct {
	Entries []*entity.Entry
	Tags    []TagLink
}

type PostFormPage struct {
	Tags []*entity.Tag
}

type EditFormPage struct {
	Entry *entity.Entry
	Tags  []*entity.Tag
}
