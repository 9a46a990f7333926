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

package session

import (
	"errors"
	"fmt"
)

// Precondition names the single requirement a rejected action was missing
type Precondition string

const (
	DocumentLoaded    Precondition = "document-loaded"
	ApproverName      Precondition = "approver-name"
	Signature         Precondition = "signature"
	SignatureAccepted Precondition = "signature-accepted"
)

// messages shown to the approver
const (
	msgSignBeforeAccepting = "Please sign before accepting."
	msgEnterName           = "Please enter your full name."
	msgProvideSignature    = "Please provide your signature."
	msgAcceptSignature     = `Please click "Accept" to lock in your signature.`
	msgNotLoaded           = "The document is not loaded."
	msgLoadFailed          = "Failed to load data."
	msgNoDocument          = "Could not retrieve docket data."
	msgSubmitFailed        = "Failed to submit signature."
)

// ErrSessionNotFound is returned when no signing session exists for an identifier
var ErrSessionNotFound = errors.New("signing session not found")

// ErrSubmissionInProgress is returned when a submit is requested while the previous one did not resolve yet
var ErrSubmissionInProgress = errors.New("submission already in progress")

// ErrSessionCompleted is returned when a submit is requested for a document that has already been signed
var ErrSessionCompleted = errors.New("document has already been signed")

// ErrAlreadyLoading is returned when a session is asked to load its document a second time
var ErrAlreadyLoading = errors.New("document load already started")

// ErrInvalidDocumentID is returned when a session is opened without a document identifier
var ErrInvalidDocumentID = errors.New("invalid document identifier")

// ErrManagerClosed is returned when sessions are opened after shutdown
var ErrManagerClosed = errors.New("session manager is shut down")

// ErrDrawingUnsupported is returned when strokes are sent to a surface which only takes local input
var ErrDrawingUnsupported = errors.New("signature surface does not accept strokes")

// LoadError is the terminal failure of a document load
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load document: %s", e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when an action is rejected because exactly one precondition is not met.
// The session is left untouched.
type ValidationError struct {
	Precondition Precondition
	Message      string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SubmissionError reports a failed submission. The session stays resubmittable.
type SubmissionError struct {
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("could not submit signature: %s", e.Reason)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func reasonOf(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
