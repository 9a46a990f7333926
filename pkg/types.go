/*
 * Nuts docket
 * Copyright (C) 2026. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package pkg

import "time"

// Config keys, also used as flag names
const (
	ConfAddress        = "address"
	ConfPublicURL      = "publicUrl"
	ConfLoadDelay      = "loadDelay"
	ConfSubmitDelay    = "submitDelay"
	ConfNoticeDuration = "noticeDuration"
	ConfPenWidth       = "penWidth"
	ConfCanvasWidth    = "canvasWidth"
	ConfCanvasHeight   = "canvasHeight"
	ConfMaxInflight    = "maxInflight"
	ConfPrintQR        = "printQR"
)

// SigningConfig holds all the configuration params
type SigningConfig struct {
	// Address to bind the http server to. Default localhost:1323
	Address string
	// PublicURL is where approvers reach the server, used for the demo links
	PublicURL      string `mapstructure:"publicUrl"`
	LoadDelay      time.Duration
	SubmitDelay    time.Duration
	NoticeDuration time.Duration
	PenWidth       float32
	CanvasWidth    int
	CanvasHeight   int
	MaxInflight    int64
	PrintQR        bool `mapstructure:"printQR"`
}

// DemoEntry is a document that can be opened without knowing an identifier up front
type DemoEntry struct {
	DocumentID string
	Kind       string
	Label      string
}
