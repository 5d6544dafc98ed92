package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return WrapErrorf(err, ErrNotFound, "config file not found")
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// RoutingConfig is fixed for the lifetime of an engine.
type RoutingConfig struct {
	LeftTurnMinAngle    float64 // degree
	PenaltyToBetterRoad float64 // second
	PenaltyToEqualRoad  float64 // second
	PenaltyToWorseRoad  float64 // second
	HeuristicMaxSpeed   float64 // km/h
	MaxPointsAllowed    int
	SnapRadius          float64 // km
}

func LoadRoutingConfig() RoutingConfig {
	viper.SetDefault("LEFT_TURN_MIN_ANGLE", pkg.DEFAULT_LEFT_TURN_MIN_ANGLE)
	viper.SetDefault("PENALTY_TO_BETTER_ROAD", pkg.DEFAULT_PENALTY_TO_BETTER_ROAD)
	viper.SetDefault("PENALTY_TO_EQUAL_ROAD", pkg.DEFAULT_PENALTY_TO_EQUAL_ROAD)
	viper.SetDefault("PENALTY_TO_WORSE_ROAD", pkg.DEFAULT_PENALTY_TO_WORSE_ROAD)
	viper.SetDefault("HEURISTIC_MAX_SPEED", pkg.DEFAULT_HEURISTIC_MAX_SPEED)
	viper.SetDefault("MAX_POINTS_ALLOWED", pkg.DEFAULT_MAX_POINTS_ALLOWED)
	viper.SetDefault("SNAP_RADIUS", 0.5)

	return RoutingConfig{
		LeftTurnMinAngle:    viper.GetFloat64("LEFT_TURN_MIN_ANGLE"),
		PenaltyToBetterRoad: viper.GetFloat64("PENALTY_TO_BETTER_ROAD"),
		PenaltyToEqualRoad:  viper.GetFloat64("PENALTY_TO_EQUAL_ROAD"),
		PenaltyToWorseRoad:  viper.GetFloat64("PENALTY_TO_WORSE_ROAD"),
		HeuristicMaxSpeed:   viper.GetFloat64("HEURISTIC_MAX_SPEED"),
		MaxPointsAllowed:    viper.GetInt("MAX_POINTS_ALLOWED"),
		SnapRadius:          viper.GetFloat64("SNAP_RADIUS"),
	}
}
