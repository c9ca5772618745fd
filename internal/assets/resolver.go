package assets

import "errors"

// AssetResolver looks assets up in an optional custom directory first and
// falls back to the embedded assets when the custom directory lacks them.
type AssetResolver struct {
	custom   AssetLoader // nil when no custom path is configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath means
// embedded assets only. A non-empty but unusable path is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}
	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle resolves a CSS style by name.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.resolve(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate resolves a page template by name.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.resolve(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// HasCustomLoader reports whether a custom asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

func (r *AssetResolver) resolve(load func(AssetLoader) (string, error)) (string, error) {
	if r.custom == nil {
		return load(r.embedded)
	}
	content, err := load(r.custom)
	if err == nil {
		return content, nil
	}
	// Validation and I/O failures are real errors; only absence falls back.
	if !isNotFound(err) {
		return "", err
	}
	return load(r.embedded)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

var _ AssetLoader = (*AssetResolver)(nil)
