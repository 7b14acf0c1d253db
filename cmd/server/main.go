package main

import (
	"context"
	"ecovia-route-service/internal/api"
	"ecovia-route-service/internal/api/dto"
	"ecovia-route-service/internal/config"
	"ecovia-route-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	routeFrom   string
	routeTo     string
	routeMode   string
	stationLat  float64
	stationLon  float64
	radiusKm    float64
	suggestSize int
)

var rootCmd = &cobra.Command{
	Use:           "ecovia",
	Short:         "EcoVia route and charging-station aggregator",
	Long:          `Plans walk, cycle and drive routes with CO2 estimates, lists nearby EV charging stations and suggests places.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Plan a single route and print it as JSON",
	Long:  `Plan a route between two places. A location is free text or "lat,lon".`,
	RunE:  runRoute,
}

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List charging stations around a point",
	RunE:  runStations,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Print place suggestions for partial text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	routeCmd.Flags().StringVar(&routeFrom, "from", "", "Start location (text or \"lat,lon\")")
	routeCmd.Flags().StringVar(&routeTo, "to", "", "End location (text or \"lat,lon\")")
	routeCmd.Flags().StringVarP(&routeMode, "mode", "m", dto.DefaultMode, "Travel mode: walk, cycle or drive")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")

	stationsCmd.Flags().Float64Var(&stationLat, "lat", 0, "Latitude of the search center")
	stationsCmd.Flags().Float64Var(&stationLon, "lon", 0, "Longitude of the search center")
	stationsCmd.Flags().Float64VarP(&radiusKm, "radius", "r", 0, "Search radius in km (default from DEFAULT_RADIUS_KM)")
	_ = stationsCmd.MarkFlagRequired("lat")
	_ = stationsCmd.MarkFlagRequired("lon")

	suggestCmd.Flags().IntVarP(&suggestSize, "size", "n", 0, "Maximum suggestions (default from SUGGESTION_SIZE)")

	rootCmd.AddCommand(serveCmd, routeCmd, stationsCmd, suggestCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found (using environment variables)")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return newApp(cfg)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	handler := api.NewRouter(api.Deps{
		Planner:            a.planner,
		Stations:           a.stations,
		Suggestions:        a.suggestions,
		DefaultRadiusKm:    a.cfg.DefaultRadiusKm,
		CORSAllowedOrigins: a.cfg.CORSAllowedOrigins,
		Logger:             a.logger,
		Metrics:            a.metrics,
		Gatherer:           a.registry,
	})

	// Write timeout covers a geocode pair followed by a routing call.
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      a.cfg.GeocodeTimeout + a.cfg.RoutingTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down", zap.Duration("timeout", a.cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runRoute(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	res, err := a.planner.PlanRoute(cmd.Context(), parseLocationArg(routeFrom), parseLocationArg(routeTo), routeMode)
	if err != nil {
		return err
	}
	return printJSON(cmd, dto.NewRouteResponse(res))
}

func runStations(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	center := domain.Coordinates{Lat: stationLat, Lon: stationLon}
	if err := center.Validate(); err != nil {
		return err
	}
	radius := radiusKm
	if radius <= 0 {
		radius = a.cfg.DefaultRadiusKm
	}

	res := a.stations.ListStations(cmd.Context(), center, radius)
	return printJSON(cmd, dto.NewStationsResponse(res))
}

func runSuggest(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	suggestions, err := a.suggestions.Suggest(cmd.Context(), strings.Join(args, " "), suggestSize)
	if err != nil {
		return err
	}
	return printJSON(cmd, dto.NewSuggestionsResponse(suggestions))
}

// parseLocationArg treats "lat,lon" as explicit coordinates and anything else as text.
func parseLocationArg(s string) domain.LocationInput {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if ok {
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
		if errLat == nil && errLon == nil {
			return domain.AtCoordinates(domain.Coordinates{Lat: lat, Lon: lon})
		}
	}
	return domain.TextQuery(s)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
