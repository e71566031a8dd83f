package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	lib "github.com/go-london/golondon"
	"github.com/go-london/golondon/config"
	"github.com/go-london/golondon/linestatus"
	"github.com/go-london/golondon/stoppoint"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	call := flag.String("call", "status", "oneshot call: search|arrivals|nearby|status|overview")
	query := flag.String("query", "", "search text (call=search)")
	stopID := flag.String("stop", "", "stop point id (call=arrivals)")
	lat := flag.Float64("lat", 51.5072, "search center latitude (call=nearby)")
	lon := flag.Float64("lon", -0.1276, "search center longitude (call=nearby)")
	radius := flag.Int("radius", 500, "search radius in meters (call=nearby)")
	flag.Parse()

	_ = godotenv.Load()

	lib.InitLogging()
	cfg, err := config.LoadAppConfig()
	if err != nil {
		panic(err)
	}
	app, err := lib.NewApp(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = app.Close() }()

	switch *mode {
	case "serve":
		lib.StartServer(app, cfg.Server.Port, cfg.Server.AllowedOrigins)
		lib.HandleGracefulShutdown()
	case "oneshot":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		out, err := runOneshot(ctx, app, *call, *query, *stopID, *lat, *lon, *radius)
		if err != nil {
			panic(err)
		}
		buf, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	default:
		panic("unknown mode")
	}
}

func runOneshot(ctx context.Context, app *lib.App, call, query, stopID string, lat, lon float64, radius int) (any, error) {
	switch call {
	case "search":
		if query == "" {
			return nil, fmt.Errorf("search requires -query")
		}
		return app.Stops.DetailedSearch(ctx, query)
	case "arrivals":
		if stopID == "" {
			return nil, fmt.Errorf("arrivals requires -stop")
		}
		stops, err := app.Stops.StopPoints(ctx, []string{stopID})
		if err != nil {
			return nil, err
		}
		if len(stops) == 0 {
			return nil, fmt.Errorf("no such stop point: %s", stopID)
		}
		return app.Stops.EstimatedArrivals(ctx, stops[0])
	case "nearby":
		center := stoppoint.Coordinate{Lat: lat, Lon: lon}
		return app.Stops.FindNearbyMarkers(ctx, center, radius, app.Prefs.HomeModeFilters(), &center)
	case "status":
		return app.Lines.LineStatuses(ctx, linestatus.StatusModes())
	case "overview":
		return app.Lines.Overview(ctx, linestatus.StatusModes())
	default:
		return nil, fmt.Errorf("unknown call: %s", call)
	}
}
