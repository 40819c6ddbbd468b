package models

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports a payload that violates an entity schema
// (missing required field, value outside an enum). Handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Msg: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

func requiredTime(field string, value *time.Time) error {
	if value == nil || value.IsZero() {
		return &ValidationError{Msg: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

func inEnum(field, value string, allowed []string) error {
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return &ValidationError{Msg: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", "))}
}

func optionalEnum(field string, value *string, allowed []string) error {
	if value == nil || *value == "" {
		return nil
	}
	return inEnum(field, *value, allowed)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (u *User) DocID() string           { return u.ID }
func (u *User) SetDocID(id string)      { u.ID = id }
func (u *User) Owner() string           { return "" }
func (u *User) SetDefaults(_ time.Time) {}
func (u *User) Validate() error {
	// name is optional so that register (email+password only) can create the
	// identity root before profile details are filled in.
	return firstErr(
		required("email", u.Email),
		required("password", u.Password),
	)
}

func (s *SocialProfile) DocID() string           { return s.ID }
func (s *SocialProfile) SetDocID(id string)      { s.ID = id }
func (s *SocialProfile) Owner() string           { return s.UserID }
func (s *SocialProfile) SetDefaults(_ time.Time) {}
func (s *SocialProfile) Validate() error {
	return firstErr(
		required("userId", s.UserID),
		required("platform", s.Platform),
		inEnum("platform", s.Platform, Platforms),
		required("accessToken", s.AccessToken),
		required("profileId", s.ProfileID),
	)
}

func (a *Analytics) DocID() string      { return a.ID }
func (a *Analytics) SetDocID(id string) { a.ID = id }
func (a *Analytics) Owner() string      { return a.UserID }
func (a *Analytics) SetDefaults(now time.Time) {
	if a.Timestamp.IsZero() {
		a.Timestamp = now
	}
}
func (a *Analytics) Validate() error {
	return firstErr(
		required("userId", a.UserID),
		required("platform", a.Platform),
		inEnum("platform", a.Platform, Platforms),
		required("postId", a.PostID),
	)
}

func (c *ContentCalendar) DocID() string           { return c.ID }
func (c *ContentCalendar) SetDocID(id string)      { c.ID = id }
func (c *ContentCalendar) Owner() string           { return c.UserID }
func (c *ContentCalendar) SetDefaults(_ time.Time) {}
func (c *ContentCalendar) Validate() error {
	return required("userId", c.UserID)
}

func (c *ContentSuggestion) DocID() string           { return c.ID }
func (c *ContentSuggestion) SetDocID(id string)      { c.ID = id }
func (c *ContentSuggestion) Owner() string           { return c.UserID }
func (c *ContentSuggestion) SetDefaults(_ time.Time) {}
func (c *ContentSuggestion) Validate() error {
	return firstErr(
		required("userId", c.UserID),
		required("topic", c.Topic),
		optionalEnum("format", c.Format, ContentSuggestionFormats),
	)
}

func (c *CustomAsset) DocID() string           { return c.ID }
func (c *CustomAsset) SetDocID(id string)      { c.ID = id }
func (c *CustomAsset) Owner() string           { return c.UserID }
func (c *CustomAsset) SetDefaults(_ time.Time) {}
func (c *CustomAsset) Validate() error {
	return firstErr(
		required("userId", c.UserID),
		required("name", c.Name),
		required("type", c.Type),
		inEnum("type", c.Type, CustomAssetTypes),
		required("url", c.URL),
	)
}

func (g *Goal) DocID() string           { return g.ID }
func (g *Goal) SetDocID(id string)      { g.ID = id }
func (g *Goal) Owner() string           { return g.UserID }
func (g *Goal) SetDefaults(_ time.Time) {}
func (g *Goal) Validate() error {
	if err := firstErr(
		required("userId", g.UserID),
		required("metric", g.Metric),
		requiredTime("startDate", g.StartDate),
		requiredTime("endDate", g.EndDate),
	); err != nil {
		return err
	}
	if g.TargetValue == nil {
		return &ValidationError{Msg: "targetValue is required"}
	}
	return nil
}

func (n *Notification) DocID() string      { return n.ID }
func (n *Notification) SetDocID(id string) { n.ID = id }
func (n *Notification) Owner() string      { return n.UserID }
func (n *Notification) SetDefaults(now time.Time) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
}
func (n *Notification) Validate() error {
	return firstErr(
		required("userId", n.UserID),
		required("message", n.Message),
		required("type", n.Type),
		inEnum("type", n.Type, NotificationTypes),
	)
}

func (p *PostHistory) DocID() string      { return p.ID }
func (p *PostHistory) SetDocID(id string) { p.ID = id }
func (p *PostHistory) Owner() string      { return p.UserID }
func (p *PostHistory) SetDefaults(now time.Time) {
	if p.CreatedTime.IsZero() {
		p.CreatedTime = now
	}
}
func (p *PostHistory) Validate() error {
	return firstErr(
		required("userId", p.UserID),
		required("postId", p.PostID),
		required("platform", p.Platform),
		inEnum("platform", p.Platform, Platforms),
		required("content", p.Content),
	)
}

func (s *ScheduledPost) DocID() string      { return s.ID }
func (s *ScheduledPost) SetDocID(id string) { s.ID = id }
func (s *ScheduledPost) Owner() string      { return s.UserID }
func (s *ScheduledPost) SetDefaults(_ time.Time) {
	if s.Status == "" {
		s.Status = StatusScheduled
	}
}
func (s *ScheduledPost) Validate() error {
	return firstErr(
		required("userId", s.UserID),
		required("content", s.Content),
		required("platform", s.Platform),
		inEnum("platform", s.Platform, Platforms),
		requiredTime("scheduledTime", s.ScheduledTime),
		inEnum("status", s.Status, ScheduledPostStatuses),
	)
}

func (t *Team) DocID() string           { return t.ID }
func (t *Team) SetDocID(id string)      { t.ID = id }
func (t *Team) Owner() string           { return "" }
func (t *Team) SetDefaults(_ time.Time) {}
func (t *Team) Validate() error {
	if err := required("name", t.Name); err != nil {
		return err
	}
	for _, m := range t.Members {
		if err := firstErr(
			required("members.userId", m.UserID),
			required("members.role", m.Role),
			inEnum("members.role", m.Role, Roles),
		); err != nil {
			return err
		}
	}
	return nil
}

func (t *Template) DocID() string           { return t.ID }
func (t *Template) SetDocID(id string)      { t.ID = id }
func (t *Template) Owner() string           { return "" }
func (t *Template) SetDefaults(_ time.Time) {}
func (t *Template) Validate() error {
	if err := firstErr(
		required("name", t.Name),
		required("type", t.Type),
		inEnum("type", t.Type, TemplateTypes),
		required("platform", t.Platform),
		inEnum("platform", t.Platform, TemplatePlatforms),
		required("imageUrl", t.ImageURL),
	); err != nil {
		return err
	}
	for _, el := range t.Elements {
		if err := required("elements.type", el.Type); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRole) DocID() string           { return r.ID }
func (r *UserRole) SetDocID(id string)      { r.ID = id }
func (r *UserRole) Owner() string           { return r.UserID }
func (r *UserRole) SetDefaults(_ time.Time) {}
func (r *UserRole) Validate() error {
	return firstErr(
		required("userId", r.UserID),
		required("role", r.Role),
		inEnum("role", r.Role, Roles),
	)
}
