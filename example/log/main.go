package main

import (
	"city-weather/pkg/log"
	"go.uber.org/zap"
)

type lookupSummary struct {
	City       string  `json:"city"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int64   `json:"population"`
}

func main() {

	var matched bool = true
	var city string = "Springfield"
	var population int64 = 116250
	var temperature float64 = 21.4
	summary := lookupSummary{
		City:       "Springfield",
		Latitude:   39.80172,
		Longitude:  -89.64371,
		Population: 116250,
	}

	// Remember to set APPLICATION_NAME env
	log.Info("Example info with Zap Logger with normal Logger (hardTyped). You can use log.Info, log.Debug, log.Error, etc.",
		zap.Bool("matched", matched),
		zap.String("city", city),
		zap.Int64p("population", &population),
		zap.Float64("temperature", temperature),
		zap.Any("summary", summary),
	)

	log.Infow("Example with less performatic sugaredLogger (non strong type). You can use log.Infow, log.Debugw, log.Errorw, etc.",
		"matched", matched,
		"city", city,
		"population", population,
		"temperature", temperature,
		"summary", summary)

	log.Warnf("Example with sugaredLogger message formatter. You can use log.Infof, log.Debugf, log.Errorf."+
		" Example message: 'No geocoding match for city: %s'", city)
}
