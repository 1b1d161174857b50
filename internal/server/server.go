package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/daver64/rworld/internal/server/config"
	"github.com/daver64/rworld/pkg/world"
)

// Server is the worldd query server: a single World exposed over HTTP and
// WebSocket.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	world    *world.World
	upgrader websocket.Upgrader
}

// New creates a new Server with the given config and logger.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	w, err := world.New(cfg.World)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	return &Server{
		cfg:   cfg,
		log:   log,
		world: w,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the HTTP routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/query", s.handleQuery)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Start begins serving and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}

	s.log.Info("server started",
		"addr", s.cfg.Addr,
		"seed", s.cfg.World.Seed,
		"maxBatch", s.cfg.MaxBatch,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	s.log.Info("server shutting down")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"seed":   s.world.Config().Seed,
	})
}

// sample is the /query response: one location, the full surface snapshot.
type sample struct {
	Longitude         float64 `json:"longitude"`
	Latitude          float64 `json:"latitude"`
	Altitude          float64 `json:"altitude"`
	Height            float64 `json:"height"`
	Temperature       float64 `json:"temperature"`
	Humidity          float64 `json:"humidity"`
	Precipitation     float64 `json:"precipitation"`
	PrecipitationType string  `json:"precipitation_type"`
	Pressure          float64 `json:"pressure"`
	WindSpeed         float64 `json:"wind_speed"`
	WindDirection     float64 `json:"wind_direction"`
	CloudDensity      float64 `json:"cloud_density"`
	Biome             string  `json:"biome"`
	SoilType          string  `json:"soil_type"`
	SoilFertility     float64 `json:"soil_fertility"`
	Vegetation        float64 `json:"vegetation"`
	IsRiver           bool    `json:"is_river"`
	RiverWidth        float64 `json:"river_width"`
	IsVolcano         bool    `json:"is_volcano"`
	Insolation        float64 `json:"insolation"`
	IsDaylight        bool    `json:"is_daylight"`
	SolarAngle        float64 `json:"solar_angle"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		http.Error(w, "lon: "+err.Error(), http.StatusBadRequest)
		return
	}
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		http.Error(w, "lat: "+err.Error(), http.StatusBadRequest)
		return
	}
	hour := parseFloatOr(q.Get("time"), 12)
	alt := parseFloatOr(q.Get("alt"), 0)
	if alt == 0 {
		alt = math.Max(s.world.TerrainHeight(lon, lat), 0)
	}

	writeJSON(w, http.StatusOK, sample{
		Longitude:         lon,
		Latitude:          lat,
		Altitude:          alt,
		Height:            s.world.TerrainHeight(lon, lat),
		Temperature:       s.world.Temperature(lon, lat, alt),
		Humidity:          s.world.Humidity(lon, lat, alt),
		Precipitation:     s.world.Precipitation(lon, lat, alt),
		PrecipitationType: world.PrecipitationName(s.world.PrecipitationType(lon, lat, alt)),
		Pressure:          s.world.AirPressure(lon, lat, alt),
		WindSpeed:         s.world.WindSpeed(lon, lat, alt),
		WindDirection:     s.world.WindDirection(lon, lat, alt),
		CloudDensity:      s.world.CloudDensity(lon, lat, hour),
		Biome:             world.BiomeName(s.world.Biome(lon, lat, alt)),
		SoilType:          world.SoilName(s.world.SoilType(lon, lat, alt)),
		SoilFertility:     s.world.SoilFertility(lon, lat, alt),
		Vegetation:        s.world.VegetationDensity(lon, lat, alt),
		IsRiver:           s.world.IsRiver(lon, lat),
		RiverWidth:        s.world.RiverWidth(lon, lat),
		IsVolcano:         s.world.IsVolcano(lon, lat),
		Insolation:        s.world.Insolation(lon, lat, hour),
		IsDaylight:        s.world.IsDaylight(lon, lat, hour),
		SolarAngle:        s.world.SolarAngle(lon, lat, hour),
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	s.log.Info("client connected", "remote", conn.RemoteAddr())
	for {
		var req QueryRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Info("client disconnected", "remote", conn.RemoteAddr(), "error", err)
			}
			return
		}

		resp, reqErr := s.evaluate(req)
		if reqErr != nil {
			if err := conn.WriteJSON(ErrorResponse{Error: reqErr.Error()}); err != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

func (s *Server) evaluate(req QueryRequest) (QueryResponse, error) {
	if len(req.Locations) == 0 {
		return QueryResponse{}, fmt.Errorf("locations must not be empty")
	}
	if len(req.Locations) > s.cfg.MaxBatch {
		return QueryResponse{}, fmt.Errorf("batch of %d exceeds limit %d", len(req.Locations), s.cfg.MaxBatch)
	}
	types, err := parseTypes(req.Types)
	if err != nil {
		return QueryResponse{}, err
	}
	return toResponse(s.world.BatchQuery(toLocations(req.Locations), types)), nil
}

func parseFloatOr(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
