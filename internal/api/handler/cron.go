package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/invoicing-dashboard/pkg/apiErrors"
	"github.com/vfg2006/invoicing-dashboard/pkg/log"
)

const (
	CronJobTypeRevenue = "revenue"
)

// CronJob is a background job that can be started on demand.
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices maps a job type to the job it runs.
type CronJobServices map[string]CronJob

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Unknown cron job type", map[string]any{
				"type": cronType,
			})
			return
		}

		log.ForContext(r.Context()).Infof("manual %s cron run requested", cronType)
		job.TriggerManualSync()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
