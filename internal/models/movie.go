// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Movie is a single title from the movie collection.
//
// Numeric fields follow the collection's stored types: ratings are doubles,
// years and counts are integers. EndYear is nil for titles without one.
// PosterURL is only present once a poster update has been applied.
type Movie struct {
	ID             bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Tconst         string        `json:"tconst" bson:"tconst"`
	TitleType      string        `json:"titleType" bson:"titleType"`
	PrimaryTitle   string        `json:"primaryTitle" bson:"primaryTitle"`
	OriginalTitle  string        `json:"originalTitle" bson:"originalTitle"`
	IsAdult        int           `json:"isAdult" bson:"isAdult"`
	StartYear      int           `json:"startYear" bson:"startYear"`
	EndYear        *int          `json:"endYear" bson:"endYear"`
	RuntimeMinutes int           `json:"runtimeMinutes" bson:"runtimeMinutes"`
	Genres         []string      `json:"genres" bson:"genres"`
	AverageRating  float64       `json:"averageRating" bson:"averageRating"`
	NumVotes       int           `json:"numVotes" bson:"numVotes"`
	PosterURL      string        `json:"posterURL,omitempty" bson:"posterURL,omitempty"`
}
