package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"
	"github.com/couchcryptid/transit-traffic-service/internal/observability"
	"github.com/couchcryptid/transit-traffic-service/internal/routing"
	"github.com/couchcryptid/transit-traffic-service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

// ObservationPublisher pushes accepted observations to a side channel.
// A nil publisher disables publishing.
type ObservationPublisher interface {
	PublishObservation(ctx context.Context, obs domain.Observation, score float64) error
}

// API holds the handlers' collaborators: the observation store, the two
// route planners, the fixed event calendar, and observability.
type API struct {
	store     *store.MemoryStore
	catalog   *routing.CatalogPlanner
	simulated *routing.SimulatedPlanner
	calendar  []domain.Event

	fallback  domain.FallbackPolicy
	reportLoc domain.Coordinate

	publisher ObservationPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// APIOptions collects everything the handler set depends on.
type APIOptions struct {
	Store          *store.MemoryStore
	Catalog        *routing.CatalogPlanner
	Simulated      *routing.SimulatedPlanner
	Calendar       []domain.Event
	Fallback       domain.FallbackPolicy
	ReportLocation domain.Coordinate
	Publisher      ObservationPublisher // nil disables publishing
	Logger         *slog.Logger
	Metrics        *observability.Metrics
}

// NewAPI wires the handler set.
func NewAPI(opts APIOptions) *API {
	return &API{
		store:     opts.Store,
		catalog:   opts.Catalog,
		simulated: opts.Simulated,
		calendar:  opts.Calendar,
		fallback:  opts.Fallback,
		reportLoc: opts.ReportLocation,
		publisher: opts.Publisher,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
}

// CheckReadiness returns nil when the API can serve route requests.
func (a *API) CheckReadiness(_ context.Context) error {
	if a.catalog.RoadCount() == 0 {
		return errors.New("road catalog is empty")
	}
	return nil
}

// coordinatePayload uses pointers so that latitude/longitude 0 still counts
// as provided.
type coordinatePayload struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func (p coordinatePayload) toCoordinate() domain.Coordinate {
	return domain.Coordinate{Latitude: *p.Latitude, Longitude: *p.Longitude}
}

type submitRequest struct {
	Location         *coordinatePayload `json:"location" binding:"required"`
	VehicleCount     *int               `json:"vehicle_count" binding:"required,gte=0"`
	Timestamp        time.Time          `json:"timestamp"`
	Weather          string             `json:"weather"`
	AccidentReported bool               `json:"accident_reported"`
	SchoolZone       bool               `json:"school_zone"`
	EventNearby      bool               `json:"event_nearby"`
}

func (a *API) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "transit traffic service is running",
		"status":  "running",
	})
}

func (a *API) handleReadiness(c *gin.Context) {
	if err := a.CheckReadiness(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (a *API) handleSubmit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	obs := domain.Observation{
		ID:               uuid.NewString(),
		Location:         req.Location.toCoordinate(),
		VehicleCount:     *req.VehicleCount,
		Timestamp:        req.Timestamp,
		Weather:          domain.Weather(req.Weather),
		AccidentReported: req.AccidentReported,
		SchoolZone:       req.SchoolZone,
		EventNearby:      req.EventNearby,
	}
	if obs.Timestamp.IsZero() {
		obs.Timestamp = domain.Now()
	}

	a.store.Submit(obs)
	a.metrics.ObservationsSubmitted.Inc()
	a.metrics.StoreSize.Set(float64(a.store.Count()))

	score := domain.ComputeScore(obs)
	a.publish(c.Request.Context(), obs, score)

	c.JSON(http.StatusOK, gin.H{
		"id":      obs.ID,
		"message": "Data stored successfully.",
	})
}

// publish sends the observation to the side channel without blocking the
// response. Failures are logged, never surfaced to the client.
func (a *API) publish(reqCtx context.Context, obs domain.Observation, score float64) {
	if a.publisher == nil {
		return
	}
	ctx := context.WithoutCancel(reqCtx)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		if err := a.publisher.PublishObservation(ctx, obs, score); err != nil {
			a.logger.Warn("publish observation failed", "error", err, "observation_id", obs.ID)
			a.metrics.KafkaPublishes.WithLabelValues("error").Inc()
			return
		}
		a.metrics.KafkaPublishes.WithLabelValues("success").Inc()
	}()
}

func (a *API) handleClear(c *gin.Context) {
	dropped := a.store.Clear()
	a.metrics.ObservationsCleared.Add(float64(dropped))
	a.metrics.StoreSize.Set(0)

	c.JSON(http.StatusOK, gin.H{"cleared": dropped})
}

func (a *API) handleRecent(c *gin.Context) {
	n, err := intQuery(c, "n", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"observations": a.store.Latest(n)})
}

func (a *API) handleSeed(c *gin.Context) {
	count, err := intQuery(c, "count", 100)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for i := 0; i < count; i++ {
		a.store.Submit(domain.RandomObservation(a.reportLoc))
	}
	a.metrics.ObservationsSubmitted.Add(float64(count))
	a.metrics.StoreSize.Set(float64(a.store.Count()))

	c.JSON(http.StatusOK, gin.H{"seeded": count, "total": a.store.Count()})
}

type scoreResponse struct {
	domain.ScoreResult
	NightAdjustedScore float64 `json:"night_adjusted_score"`
}

func (a *API) handleScore(c *gin.Context) {
	var loc coordinatePayload
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coord := loc.toCoordinate()
	result := domain.ScoreForLocation(a.store.MatchAt(coord), coord, a.fallback)
	a.metrics.ScoreRequests.WithLabelValues(string(result.Source)).Inc()

	c.JSON(http.StatusOK, scoreResponse{
		ScoreResult:        result,
		NightAdjustedScore: domain.AdjustScoreForNight(result.Score, domain.Now()),
	})
}

type optimizeRequest struct {
	UserID          string             `json:"user_id" binding:"required"`
	CurrentLocation *coordinatePayload `json:"current_location" binding:"required"`
	Destination     *coordinatePayload `json:"destination" binding:"required"`
	CurrentTime     time.Time          `json:"current_time" binding:"required"`
	Weather         string             `json:"weather"`
	NearSchool      bool               `json:"near_school"`
}

func (a *API) handleOptimizeRoute(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := a.simulated.Plan(routing.PlanRequest{
		UserID:        req.UserID,
		Current:       req.CurrentLocation.toCoordinate(),
		Destination:   req.Destination.toCoordinate(),
		DepartureTime: req.CurrentTime,
		Weather:       domain.Weather(req.Weather),
		NearSchool:    req.NearSchool,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	a.metrics.RoutePlans.WithLabelValues(a.simulated.Name()).Inc()

	c.JSON(http.StatusOK, plan)
}

type smartRoutesRequest struct {
	CurrentLocation *coordinatePayload `json:"current_location" binding:"required"`
	Destination     *coordinatePayload `json:"destination" binding:"required"`
	Mode            string             `json:"mode" binding:"required"`
	TimeOfDay       string             `json:"time_of_day"`
	Events          []domain.Event     `json:"events"`
}

func (a *API) handleSmartRoutes(c *gin.Context) {
	var req smartRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := a.catalog.Plan(routing.PlanRequest{
		Current:     req.CurrentLocation.toCoordinate(),
		Destination: req.Destination.toCoordinate(),
		Mode:        domain.TravelMode(req.Mode),
		Events:      req.Events,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Unreachable with the fixed catalog; kept in case the catalog ever
	// becomes configurable.
	if len(plan.Alternates) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no routes found"})
		return
	}
	a.metrics.RoutePlans.WithLabelValues(a.catalog.Name()).Inc()

	c.JSON(http.StatusOK, plan.Alternates)
}

func (a *API) handleDensity(c *gin.Context) {
	densities := make(map[string]float64)
	for _, row := range a.catalog.Summarize(a.calendar, domain.ModeBus) {
		densities[row.Road] = row.Density
	}
	c.JSON(http.StatusOK, densities)
}

func (a *API) handleEvents(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ActiveEvents(a.calendar, domain.Now()))
}

func (a *API) handleReportSummary(c *gin.Context) {
	avg := domain.AverageScore(a.store.Near(a.reportLoc, store.DefaultTolerance), a.reportLoc, a.fallback)

	c.JSON(http.StatusOK, gin.H{
		"total_records": a.store.Count(),
		"average_score": avg.Score,
		"score_source":  avg.Source,
		"peak_hour":     domain.IsPeakHour(domain.Now()),
		"recent_data":   a.store.Latest(5),
	})
}

func (a *API) handleAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Analyze(a.store.Snapshot()))
}

func (a *API) handleDebugRouteSummary(c *gin.Context) {
	mode := domain.TravelMode(c.DefaultQuery("mode", string(domain.ModeBus)))
	c.JSON(http.StatusOK, a.catalog.Summarize(a.calendar, mode))
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"records":   a.store.Count(),
		"timestamp": domain.Now().Format(time.RFC3339),
	})
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + key + " parameter")
	}
	return n, nil
}
