package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mkovacevic/fitlog/internal/telemetry/metrics"
	"github.com/mkovacevic/fitlog/internal/telemetry/tracing"
	"github.com/mkovacevic/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	aggregator     *Aggregator
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(aggregator *Aggregator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		aggregator:     aggregator,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// HandleSummary serves the home screen report. A missing or zero
// userId is not rejected: older clients fetch the summary before the
// user record exists and expect an all-zero report back.
func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	startedAt := handler.now()

	// ignore the error: a missing or garbled userId falls back to 0
	userID, _ := strconv.Atoi(r.URL.Query().Get("userId"))

	referenceDate := handler.now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse(time.DateOnly, dateParam)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		referenceDate = parsed
	}

	summary, err := handler.aggregator.Summary(ctx, userID, referenceDate)
	if err != nil {
		log.Errorf("dashboard summary for user %d: %s", userID, err)
		http.Error(w, "failed to build summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal dashboard summary: %s", err)
		http.Error(w, "failed to build summary", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSummaryReports.Inc()
	handler.metricsManager.HistSummaryReportDuration.Observe(handler.now().Sub(startedAt).Seconds())

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}
