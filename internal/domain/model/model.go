// Package model contains domain models passed between layers.
package model

import (
	"math"
	"strconv"
)

// WeatherSnapshot is the most recently fetched weather for the
// configured location. Fields are replaced as a group, never partially;
// Loaded flips on the first successful replace and stays set.
type WeatherSnapshot struct {
	TemperatureC float64 // raw Celsius from the provider
	City         string
	Country      string
	Condition    string // condition text, e.g. "Partly cloudy"
	IconURL      string
	WindKPH      float64

	Loaded bool
}

// Replace atomically sets every weather field and marks the snapshot loaded.
// Callers must only invoke it on a confirmed successful fetch.
func (w *WeatherSnapshot) Replace(tempC float64, city, country, condition, iconURL string, windKPH float64) {
	w.TemperatureC = tempC
	w.City = city
	w.Country = country
	w.Condition = condition
	w.IconURL = iconURL
	w.WindKPH = windKPH
	w.Loaded = true
}

// JerseyKey returns the rounded temperature used both for display and
// as the player-selection jersey number. The two are equal by construction.
func (w *WeatherSnapshot) JerseyKey() int {
	return RoundTemperature(w.TemperatureC)
}

// PlayerProfile is the most recently selected player. Same
// all-or-nothing replace contract as WeatherSnapshot.
type PlayerProfile struct {
	FirstName string
	LastName  string
	Country   string
	Height    string
	Position  string
	Team      string

	Loaded bool
}

// Replace atomically sets every profile field and marks the profile loaded.
func (p *PlayerProfile) Replace(firstName, lastName, country, height, position, team string) {
	p.FirstName = firstName
	p.LastName = lastName
	p.Country = country
	p.Height = height
	p.Position = position
	p.Team = team
	p.Loaded = true
}

// RoundTemperature rounds a Celsius reading half away from zero:
// 21.4 -> 21, 21.5 -> 22, -0.5 -> -1.
func RoundTemperature(celsius float64) int {
	return int(math.Round(celsius))
}

// FormatTemperature renders the rounded temperature as a display string.
func FormatTemperature(celsius float64) string {
	return strconv.Itoa(RoundTemperature(celsius))
}

// FormatWind renders a wind speed with the fixed display unit suffix.
func FormatWind(kph float64) string {
	return strconv.FormatFloat(kph, 'f', -1, 64) + " km/h"
}
