package handler

import (
	"net/http"
	"strconv"
)

const ViewVersionHeader = "X-View-Version"

// ViewVersioner reports the current version of the view rendered at a path.
type ViewVersioner interface {
	Version(path string) uint64
}

func setViewVersion(w http.ResponseWriter, views ViewVersioner, path string) {
	if views == nil {
		return
	}
	w.Header().Set(ViewVersionHeader, strconv.FormatUint(views.Version(path), 10))
}
