package assets

// Loader resolves named assets such as stylesheets and HTML templates.
// The default implementation serves files compiled into the binary;
// tests substitute their own.
type Loader interface {
	Load(name string) ([]byte, error)
}
