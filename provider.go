package snapimport

// Provider is a platform whose exports have a known, fixed column layout.
type Provider struct {
	Name   string
	Format Format
}

// Fallbacks returns the formats of providers, in order, skipping empty ones.
func Fallbacks(providers []Provider) []Format {
	var formats []Format
	for _, p := range providers {
		if len(p.Format) > 0 {
			formats = append(formats, p.Format)
		}
	}
	return formats
}
