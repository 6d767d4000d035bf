package services

// Field-name tokens understood by the backend's remove list.
const (
	RemoveIcon        = "Icon"
	RemoveBanner      = "Banner"
	RemoveDescription = "Description"
)

// ServerPatch accumulates a sparse set of server field changes. A field is
// included in the request body only when it was explicitly set, so an empty
// string is a real value and distinct from "not set". Clearing a field
// server-side goes through Remove, not through setting an empty value.
//
// No validation happens here; values pass through verbatim.
type ServerPatch struct {
	name        optional[string]
	description optional[string]
	icon        optional[string]
	banner      optional[string]
	remove      []string
}

// optional is a tri-state field: unset, or set to a value (possibly zero).
type optional[T any] struct {
	value T
	set   bool
}

func NewServerPatch() *ServerPatch {
	return &ServerPatch{}
}

func (p *ServerPatch) SetName(name string) *ServerPatch {
	p.name = optional[string]{value: name, set: true}
	return p
}

func (p *ServerPatch) SetDescription(description string) *ServerPatch {
	p.description = optional[string]{value: description, set: true}
	return p
}

// SetIcon sets the icon to an uploaded asset id.
func (p *ServerPatch) SetIcon(assetID string) *ServerPatch {
	p.icon = optional[string]{value: assetID, set: true}
	return p
}

// SetBanner sets the banner to an uploaded asset id.
func (p *ServerPatch) SetBanner(assetID string) *ServerPatch {
	p.banner = optional[string]{value: assetID, set: true}
	return p
}

// Remove appends field-name tokens to the server-side clear list. Tokens are
// passed through verbatim.
func (p *ServerPatch) Remove(fields ...string) *ServerPatch {
	p.remove = append(p.remove, fields...)
	return p
}

// BuildBody renders the sparse field map for the PATCH request. All inputs
// absent yields an empty, but valid, body.
func (p *ServerPatch) BuildBody() map[string]any {
	body := make(map[string]any)
	if p.name.set {
		body["name"] = p.name.value
	}
	if p.description.set {
		body["description"] = p.description.value
	}
	if p.icon.set {
		body["icon"] = p.icon.value
	}
	if p.banner.set {
		body["banner"] = p.banner.value
	}
	if p.remove != nil {
		body["remove"] = p.remove
	}
	return body
}
