package navigation

import "errors"

// Redirect ends a mutation by sending the caller to Path. It travels as an
// error so that nothing after it runs.
type Redirect struct {
	Path string
}

func (r *Redirect) Error() string {
	return "redirect to " + r.Path
}

func To(path string) error {
	return &Redirect{Path: path}
}

// AsRedirect reports whether err carries a Redirect and returns it.
func AsRedirect(err error) (*Redirect, bool) {
	var redirect *Redirect
	if errors.As(err, &redirect) {
		return redirect, true
	}
	return nil, false
}
