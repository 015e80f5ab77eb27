package palette

// Role is a semantic color slot that templates reference through a CSS
// custom property.
type Role int

// Roles in the order they are substituted.
const (
	Background Role = iota
	Foreground
	Text
	TextSecondary
	TextMuted
	TextFaint
	Line
	Arrow
	NodeFill
	NodeStroke
	GroupFill
	GroupHeader
	InnerStroke
	KeyBadge

	numRoles
)

var roleVars = [numRoles]string{
	Background:    "--bg",
	Foreground:    "--fg",
	Text:          "--_text",
	TextSecondary: "--_text-sec",
	TextMuted:     "--_text-muted",
	TextFaint:     "--_text-faint",
	Line:          "--_line",
	Arrow:         "--_arrow",
	NodeFill:      "--_node-fill",
	NodeStroke:    "--_node-stroke",
	GroupFill:     "--_group-fill",
	GroupHeader:   "--_group-hdr",
	InnerStroke:   "--_inner-stroke",
	KeyBadge:      "--_key-badge",
}

var roleNames = [numRoles]string{
	Background:    "background",
	Foreground:    "foreground",
	Text:          "text",
	TextSecondary: "text-secondary",
	TextMuted:     "text-muted",
	TextFaint:     "text-faint",
	Line:          "line",
	Arrow:         "arrow",
	NodeFill:      "node-fill",
	NodeStroke:    "node-stroke",
	GroupFill:     "group-fill",
	GroupHeader:   "group-header",
	InnerStroke:   "inner-stroke",
	KeyBadge:      "key-badge",
}

// Roles returns every role in substitution order.
func Roles() []Role {
	roles := make([]Role, numRoles)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// Var returns the custom property name the role is referenced by,
// including the leading "--".
func (r Role) Var() string {
	if !r.valid() {
		return ""
	}
	return roleVars[r]
}

// String returns a human-readable role name.
func (r Role) String() string {
	if !r.valid() {
		return "unknown"
	}
	return roleNames[r]
}

// TextBearing reports whether the role is drawn on top of the background
// and therefore needs to stay legible against it.
func (r Role) TextBearing() bool {
	switch r {
	case Text, TextSecondary, TextMuted, TextFaint, Line, Arrow:
		return true
	}
	return false
}

func (r Role) valid() bool { return r >= 0 && r < numRoles }
