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
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/nuts-foundation/nuts-docket/logging"
	"github.com/nuts-foundation/nuts-docket/pkg/capture"
	"github.com/nuts-foundation/nuts-docket/pkg/document"
	"github.com/nuts-foundation/nuts-docket/pkg/notice"
)

// LoadState is the progress of loading the document of a session
type LoadState string

const (
	Loading    LoadState = "loading"
	Loaded     LoadState = "loaded"
	LoadFailed LoadState = "load-failed"
)

// LockState tells if the approver accepted the drawn signature
type LockState string

const (
	Editable LockState = "editable"
	Locked   LockState = "locked"
)

// SubmissionState is the progress of submitting the signed document
type SubmissionState string

const (
	Pending    SubmissionState = "pending"
	Submitting SubmissionState = "submitting"
	Succeeded  SubmissionState = "succeeded"
	Failed     SubmissionState = "failed"
)

// NowFunc is used to timestamp signatures. It can be replaced in tests.
var NowFunc = time.Now

// Receipt holds everything that was signed, taken at the moment the submission started
type Receipt struct {
	DocumentID    string    `json:"docketId"`
	ApproverName  string    `json:"clientName"`
	ApproverEmail string    `json:"clientEmail"`
	ApproverNotes string    `json:"clientNotes"`
	Signature     string    `json:"clientSignature"`
	SignedAt      time.Time `json:"clientSignTimestamp"`
}

// Outcome is the resolution of an asynchronous submit
type Outcome struct {
	Message string
	Err     error
}

// Config holds the collaborators of a Session
type Config struct {
	// ID identifies the session, it is chosen by the caller
	ID      string
	Loader  document.Loader
	Sink    document.Sink
	Capture capture.Capture
	Notices *notice.Board
	// Limiter bounds the amount of concurrent backend calls, it is optional
	Limiter *semaphore.Weighted
}

// Session holds all interaction state of one approver signing one document. It enforces the order in which
// a document can be loaded, signed and submitted.
type Session struct {
	mu         sync.Mutex
	config     Config
	documentID string
	kind       document.Kind

	loadStarted bool
	loadState   LoadState
	loadFailure string
	doc         *document.Record

	approverName  string
	approverNotes string
	lockState     LockState

	submission   SubmissionState
	confirmation string
	failure      string
	receipt      *Receipt
}

// New creates a session for the given document. The document is not loaded until Load is called.
func New(documentID string, kind document.Kind, config Config) *Session {
	if config.Notices == nil {
		config.Notices = notice.NewBoard(notice.DefaultDuration)
	}
	if config.Capture == nil {
		config.Capture = capture.NewPad(capture.DefaultPadConfig())
	}
	return &Session{
		config:     config,
		documentID: documentID,
		kind:       kind,
		loadState:  Loading,
		lockState:  Editable,
		submission: Pending,
	}
}

func (s *Session) log() *logrus.Entry {
	return logging.Log().WithFields(logrus.Fields{
		"session":  s.config.ID,
		"document": s.documentID,
	})
}

// ID returns the identifier of the session
func (s *Session) ID() string {
	return s.config.ID
}

// Load requests the document from the loader. A failure is terminal for the session.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loadStarted {
		s.mu.Unlock()
		return ErrAlreadyLoading
	}
	s.loadStarted = true
	s.mu.Unlock()

	s.log().Debugf("loading document, kind: %s", s.kind)
	doc, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil && doc == nil {
		err = errors.New(msgNoDocument)
	}
	if err != nil {
		reason := reasonOf(err, msgLoadFailed)
		s.loadState = LoadFailed
		s.loadFailure = reason
		s.config.Notices.Raise(notice.Error, reason)
		s.log().WithError(err).Warn("could not load document")
		return &LoadError{Reason: reason, Err: err}
	}
	s.doc = doc
	s.loadState = Loaded
	return nil
}

func (s *Session) load(ctx context.Context) (*document.Record, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return s.config.Loader.Load(ctx, s.documentID, s.kind)
}

func (s *Session) acquire(ctx context.Context) (func(), error) {
	if s.config.Limiter == nil {
		return func() {}, nil
	}
	if err := s.config.Limiter.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { s.config.Limiter.Release(1) }, nil
}

// EditApproverName replaces the name of the approver. It is validated on submit.
func (s *Session) EditApproverName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approverName = name
}

// EditNotes replaces the optional notes of the approver
func (s *Session) EditNotes(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approverNotes = notes
}

// Draw adds a stroke to the signature. Locked signatures reject strokes with capture.ErrLocked.
func (s *Session) Draw(stroke capture.Stroke) error {
	drawer, ok := s.config.Capture.(capture.Drawer)
	if !ok {
		return ErrDrawingUnsupported
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return drawer.AddStroke(stroke)
}

// AcceptSignature locks the drawn signature. An empty signature is rejected and nothing changes.
func (s *Session) AcceptSignature() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config.Capture.IsEmpty() {
		return s.reject(Signature, msgSignBeforeAccepting)
	}
	s.config.Capture.Lock()
	s.lockState = Locked
	return nil
}

// ClearSignature erases the signature and makes it editable again
func (s *Session) ClearSignature() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearSignature()
}

func (s *Session) clearSignature() {
	s.config.Capture.Clear()
	s.config.Capture.Unlock()
	s.lockState = Editable
}

// ResizeSignature changes the resolution of the signature surface. The surface is re-initialized, which erases
// the signature; the session treats that like a clear.
func (s *Session) ResizeSignature(width, height int, ratio float64) error {
	resizer, ok := s.config.Capture.(capture.Resizer)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := resizer.Resize(width, height, ratio); err != nil {
		return err
	}
	s.clearSignature()
	return nil
}

// SignatureImage exports the signature as PNG. It returns capture.ErrEmpty when nothing has been drawn.
func (s *Session) SignatureImage() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config.Capture.IsEmpty() {
		return nil, capture.ErrEmpty
	}
	return s.config.Capture.ExportImage()
}

// DismissNotice removes the current notice
func (s *Session) DismissNotice() {
	s.config.Notices.Dismiss()
}

// Submit validates the session and hands the signed document to the sink. It blocks until the sink resolves.
func (s *Session) Submit(ctx context.Context) (string, error) {
	receipt, err := s.beginSubmit()
	if err != nil {
		return "", err
	}
	return s.finishSubmit(ctx, receipt)
}

// SubmitAsync validates the session and returns right away. The returned channel yields the outcome of the sink.
func (s *Session) SubmitAsync(ctx context.Context) (<-chan Outcome, error) {
	receipt, err := s.beginSubmit()
	if err != nil {
		return nil, err
	}
	result := make(chan Outcome, 1)
	go func() {
		msg, err := s.finishSubmit(ctx, receipt)
		result <- Outcome{Message: msg, Err: err}
		close(result)
	}()
	return result, nil
}

// beginSubmit checks the preconditions in a fixed order and moves to Submitting when all are met.
// Only the first failing precondition is reported.
func (s *Session) beginSubmit() (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.submission {
	case Submitting:
		return Receipt{}, ErrSubmissionInProgress
	case Succeeded:
		return Receipt{}, ErrSessionCompleted
	}
	if s.loadState != Loaded {
		return Receipt{}, s.reject(DocumentLoaded, msgNotLoaded)
	}
	if strings.TrimSpace(s.approverName) == "" {
		return Receipt{}, s.reject(ApproverName, msgEnterName)
	}
	if s.config.Capture.IsEmpty() {
		return Receipt{}, s.reject(Signature, msgProvideSignature)
	}
	if s.lockState != Locked {
		return Receipt{}, s.reject(SignatureAccepted, msgAcceptSignature)
	}

	img, err := s.config.Capture.ExportImage()
	if err != nil {
		s.config.Notices.Raise(notice.Error, msgSubmitFailed)
		return Receipt{}, &SubmissionError{Reason: msgSubmitFailed, Err: err}
	}
	receipt := Receipt{
		DocumentID:    s.documentID,
		ApproverName:  s.approverName,
		ApproverEmail: s.doc.ApproverEmail,
		ApproverNotes: s.approverNotes,
		Signature:     capture.DataURL(img),
		SignedAt:      NowFunc(),
	}
	s.receipt = &receipt
	s.submission = Submitting
	s.failure = ""
	return receipt, nil
}

func (s *Session) finishSubmit(ctx context.Context, receipt Receipt) (string, error) {
	s.log().WithFields(logrus.Fields{
		"approver":  receipt.ApproverName,
		"email":     receipt.ApproverEmail,
		"notes":     receipt.ApproverNotes,
		"signedAt":  receipt.SignedAt.Format(time.RFC3339),
		"signature": len(receipt.Signature),
	}).Debug("submitting signed document")

	msg, err := s.submit(ctx, receipt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		reason := reasonOf(err, msgSubmitFailed)
		s.submission = Failed
		s.failure = reason
		s.config.Notices.Raise(notice.Error, reason)
		s.log().WithError(err).Warn("could not submit signature")
		return "", &SubmissionError{Reason: reason, Err: err}
	}
	s.submission = Succeeded
	s.confirmation = msg
	s.config.Notices.Raise(notice.Success, msg)
	s.log().Info("document signed")
	return msg, nil
}

func (s *Session) submit(ctx context.Context, receipt Receipt) (string, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()
	return s.config.Sink.Submit(ctx, receipt.DocumentID, receipt.ApproverName)
}

// reject raises the notice for a missing precondition. Callers must hold the lock.
func (s *Session) reject(missing Precondition, message string) error {
	s.config.Notices.Raise(notice.Error, message)
	return &ValidationError{Precondition: missing, Message: message}
}

// Close tears the session down. Pending notice timers are cancelled.
func (s *Session) Close() {
	s.config.Notices.Close()
}

// View is a consistent copy of the session state, used for rendering
type View struct {
	ID                string
	DocumentID        string
	Kind              document.Kind
	LoadState         LoadState
	LoadFailure       string
	Document          *document.Record
	ApproverName      string
	ApproverNotes     string
	SignatureLock     LockState
	SignatureEmpty    bool
	Submission        SubmissionState
	Confirmation      string
	SubmissionFailure string
	Receipt           *Receipt
	Notice            *notice.Notice
}

// CanSubmit tells if the submit action should be offered
func (v View) CanSubmit() bool {
	return v.LoadState == Loaded && v.Submission != Submitting && v.Submission != Succeeded
}

// View returns a snapshot of the session
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:                s.config.ID,
		DocumentID:        s.documentID,
		Kind:              s.kind,
		LoadState:         s.loadState,
		LoadFailure:       s.loadFailure,
		Document:          s.doc,
		ApproverName:      s.approverName,
		ApproverNotes:     s.approverNotes,
		SignatureLock:     s.lockState,
		SignatureEmpty:    s.config.Capture.IsEmpty(),
		Submission:        s.submission,
		Confirmation:      s.confirmation,
		SubmissionFailure: s.failure,
	}
	if s.receipt != nil {
		r := *s.receipt
		v.Receipt = &r
	}
	if n, ok := s.config.Notices.Current(); ok {
		v.Notice = &n
	}
	return v
}
