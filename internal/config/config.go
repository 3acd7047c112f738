package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the restaurant order system
type Config struct {
	Validation ValidationConfig `yaml:"validation"`
	Pricing    PricingConfig    `yaml:"pricing"`
}

// ValidationConfig holds the tunable limits of the order validation chain
type ValidationConfig struct {
	MinimumAmount      float64  `yaml:"minimum_amount"`
	BusinessHoursStart int      `yaml:"business_hours_start"`
	BusinessHoursEnd   int      `yaml:"business_hours_end"`
	UnavailableItems   []string `yaml:"unavailable_items"`
}

// PricingConfig holds the parameters of the built-in pricing strategies
type PricingConfig struct {
	HappyHourStart    int     `yaml:"happy_hour_start"`
	HappyHourEnd      int     `yaml:"happy_hour_end"`
	HappyHourDiscount float64 `yaml:"happy_hour_discount"`
	LoyaltyThreshold  int     `yaml:"loyalty_points_threshold"`
	LoyaltyDiscount   float64 `yaml:"loyalty_discount"`
	SeasonalPromotion string  `yaml:"seasonal_promotion"`
	SeasonalDiscount  float64 `yaml:"seasonal_discount"`
	SeasonalMinOrder  float64 `yaml:"seasonal_min_order"`
}

// Default returns the configuration used when no config file is provided.
func Default() *Config {
	return &Config{
		Validation: ValidationConfig{
			MinimumAmount:      5.00,
			BusinessHoursStart: 9,
			BusinessHoursEnd:   22,
			UnavailableItems:   nil,
		},
		Pricing: PricingConfig{
			HappyHourStart:    14,
			HappyHourEnd:      17,
			HappyHourDiscount: 20.0,
			LoyaltyThreshold:  100,
			LoyaltyDiscount:   10.0,
			SeasonalPromotion: "Seasonal Promotion",
			SeasonalDiscount:  15.0,
			SeasonalMinOrder:  30.0,
		},
	}
}

// Load reads configuration from a YAML file, applying values over defaults.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	config := Default()
	scanner := bufio.NewScanner(file)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Check for section headers
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			currentSection = strings.TrimSuffix(line, ":")
			continue
		}

		// Parse key-value pairs
		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if err := config.setValue(currentSection, key, value); err != nil {
				return nil, fmt.Errorf("failed to set config value %s.%s: %w", currentSection, key, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return config, nil
}

// setValue sets a configuration value based on section and key
func (c *Config) setValue(section, key, value string) error {
	switch section {
	case "validation":
		return c.setValidationValue(key, value)
	case "pricing":
		return c.setPricingValue(key, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

// setValidationValue sets validation chain configuration values
func (c *Config) setValidationValue(key, value string) error {
	switch key {
	case "minimum_amount":
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid minimum_amount value: %w", err)
		}
		c.Validation.MinimumAmount = amount
	case "business_hours_start":
		hour, err := parseHour(value)
		if err != nil {
			return err
		}
		c.Validation.BusinessHoursStart = hour
	case "business_hours_end":
		hour, err := parseHour(value)
		if err != nil {
			return err
		}
		c.Validation.BusinessHoursEnd = hour
	case "unavailable_items":
		c.Validation.UnavailableItems = parseList(value)
	default:
		return fmt.Errorf("unknown validation key: %s", key)
	}
	return nil
}

// setPricingValue sets pricing strategy configuration values
func (c *Config) setPricingValue(key, value string) error {
	switch key {
	case "happy_hour_start":
		hour, err := parseHour(value)
		if err != nil {
			return err
		}
		c.Pricing.HappyHourStart = hour
	case "happy_hour_end":
		hour, err := parseHour(value)
		if err != nil {
			return err
		}
		c.Pricing.HappyHourEnd = hour
	case "happy_hour_discount":
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid happy_hour_discount value: %w", err)
		}
		c.Pricing.HappyHourDiscount = pct
	case "loyalty_points_threshold":
		threshold, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid loyalty_points_threshold value: %w", err)
		}
		c.Pricing.LoyaltyThreshold = threshold
	case "loyalty_discount":
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid loyalty_discount value: %w", err)
		}
		c.Pricing.LoyaltyDiscount = pct
	case "seasonal_promotion":
		c.Pricing.SeasonalPromotion = strings.Trim(value, `"`)
	case "seasonal_discount":
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid seasonal_discount value: %w", err)
		}
		c.Pricing.SeasonalDiscount = pct
	case "seasonal_min_order":
		min, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid seasonal_min_order value: %w", err)
		}
		c.Pricing.SeasonalMinOrder = min
	default:
		return fmt.Errorf("unknown pricing key: %s", key)
	}
	return nil
}

func parseHour(value string) (int, error) {
	hour, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid hour value: %w", err)
	}
	if hour < 0 || hour > 24 {
		return 0, fmt.Errorf("hour must be between 0 and 24, got %d", hour)
	}
	return hour, nil
}

// parseList parses a comma-separated value into a slice, dropping blanks.
func parseList(value string) []string {
	if value == "" || value == "[]" {
		return nil
	}
	parts := strings.Split(strings.Trim(value, "[]"), ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}
