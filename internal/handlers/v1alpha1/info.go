package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"
	api "github.com/layoutlab/warehouse-analytics/api/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/pkg/version"
)

type InfoReply struct {
	api.Info
}

func (i InfoReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	_ = render.Render(w, r, InfoReply{Info: api.Info{
		GitCommit:   versionInfo.GitCommit,
		VersionName: versionInfo.GitVersion,
		BuildDate:   versionInfo.BuildDate,
	}})
}
