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

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nuts-foundation/nuts-docket/logging"
	"github.com/nuts-foundation/nuts-docket/pkg"
	"github.com/nuts-foundation/nuts-docket/pkg/capture"
	"github.com/nuts-foundation/nuts-docket/pkg/document"
	"github.com/nuts-foundation/nuts-docket/pkg/session"
)

var _ ServerInterface = (*Wrapper)(nil)

// Wrapper bridges the generated api types and http logic to the internal types and logic.
// It parses request bodies, calls the SigningClient and converts the session state back to the api types.
// Session errors are translated to http status codes, no business logic lives here.
type Wrapper struct {
	Signing pkg.SigningClient
}

// ListDemos returns the documents of the demo backend
func (w *Wrapper) ListDemos(ctx echo.Context) error {
	answer := DemoList{Url: w.Signing.DemoURL(), Demos: []DemoEntry{}}
	for _, d := range w.Signing.Demos() {
		answer.Demos = append(answer.Demos, DemoEntry{DocumentId: d.DocumentID, Kind: d.Kind, Label: d.Label})
	}
	return ctx.JSON(http.StatusOK, answer)
}

// OpenSession creates a signing session. The document is loaded in the background, poll GetSession for the outcome.
func (w *Wrapper) OpenSession(ctx echo.Context) error {
	var params OpenSessionRequest
	if err := ctx.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Could not parse request body: %s", err))
	}
	kind, err := document.ParseKind(params.Kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s, err := w.Signing.OpenSession(params.DocumentId, kind)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, OpenSessionResult{SessionId: s.ID()})
}

// GetSession returns everything needed to render the session
func (w *Wrapper) GetSession(ctx echo.Context, id string) error {
	return w.withSession(ctx, id, http.StatusOK, func(s *session.Session) error {
		return nil
	})
}

// CloseSession tears the session down
func (w *Wrapper) CloseSession(ctx echo.Context, id string) error {
	if err := w.Signing.CloseSession(id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EditApprover replaces the name and notes of the approver
func (w *Wrapper) EditApprover(ctx echo.Context, id string) error {
	var params Approver
	if err := ctx.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Could not parse request body: %s", err))
	}
	return w.withSession(ctx, id, http.StatusOK, func(s *session.Session) error {
		s.EditApproverName(params.Name)
		if params.Notes != nil {
			s.EditNotes(*params.Notes)
		}
		return nil
	})
}

// AddStroke draws a stroke on the signature pad
func (w *Wrapper) AddStroke(ctx echo.Context, id string) error {
	var params Stroke
	if err := ctx.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Could not parse request body: %s", err))
	}
	stroke := make(capture.Stroke, 0, len(params.Points))
	for _, p := range params.Points {
		stroke = append(stroke, capture.Point{X: p.X, Y: p.Y})
	}
	return w.withSession(ctx, id, http.StatusOK, func(s *session.Session) error {
		return s.Draw(stroke)
	})
}

// AcceptSignature locks the signature
func (w *Wrapper) AcceptSignature(ctx echo.Context, id string) error {
	return w.withSession(ctx, id, http.StatusOK, func(s *session.Session) error {
		return s.AcceptSignature()
	})
}

// ClearSignature erases the signature and unlocks it
func (w *Wrapper) ClearSignature(ctx echo.Context, id string) error {
	return w.withSession(ctx, id, http.StatusOK, func(s *session.Session) error {
		s.ClearSignature()
		return nil
	})
}

// ResizeSurface changes the resolution of the signature pad, which erases the signature
func (w *Wrapper) ResizeSurface(ctx echo.Context, id string) error {
	var params Surface
	if err := ctx.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Could not parse request body: %s", err))
	}
	return w.withSession(ctx, id, http.StatusOK, func(s *session.Session) error {
		return s.ResizeSignature(params.Width, params.Height, params.Ratio)
	})
}

// GetSignature returns the signature as PNG
func (w *Wrapper) GetSignature(ctx echo.Context, id string) error {
	s, err := w.Signing.Session(id)
	if err != nil {
		return httpError(err)
	}
	img, err := s.SignatureImage()
	if err != nil {
		return httpError(err)
	}
	return ctx.Blob(http.StatusOK, "image/png", img)
}

// SubmitSession validates the session and starts the submission. The outcome is reported by GetSession.
func (w *Wrapper) SubmitSession(ctx echo.Context, id string) error {
	if err := w.Signing.SubmitSession(id); err != nil {
		return httpError(err)
	}
	s, err := w.Signing.Session(id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusAccepted, toSessionView(s.View()))
}

// DismissNotice removes the notice of the session
func (w *Wrapper) DismissNotice(ctx echo.Context, id string) error {
	return w.withSession(ctx, id, http.StatusOK, func(s *session.Session) error {
		s.DismissNotice()
		return nil
	})
}

// withSession looks up the session, applies f and answers with the resulting view
func (w *Wrapper) withSession(ctx echo.Context, id string, status int, f func(s *session.Session) error) error {
	s, err := w.Signing.Session(id)
	if err != nil {
		return httpError(err)
	}
	if err := f(s); err != nil {
		return httpError(err)
	}
	return ctx.JSON(status, toSessionView(s.View()))
}

// httpError translates session errors to http errors, unknown errors are passed on to echo as internal errors
func httpError(err error) error {
	var validationErr *session.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, capture.ErrEmpty):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrSubmissionInProgress),
		errors.Is(err, session.ErrSessionCompleted),
		errors.Is(err, capture.ErrLocked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrInvalidDocumentID),
		errors.Is(err, capture.ErrInvalidSurface),
		errors.Is(err, session.ErrDrawingUnsupported):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, capture.ErrSurfaceFull):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, session.ErrManagerClosed), errors.Is(err, pkg.ErrNotConfigured):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	logging.Log().WithError(err).Error("unexpected error while handling signing request")
	return err
}

func toSessionView(v session.View) SessionView {
	answer := SessionView{
		SessionId:          v.ID,
		DocumentId:         v.DocumentID,
		Kind:               string(v.Kind),
		Title:              v.Kind.Title(),
		OwnerLabel:         v.Kind.OwnerLabel(),
		ApproverPossessive: v.Kind.ApproverPossessive(),
		LoadState:          string(v.LoadState),
		Approver:           Approver{Name: v.ApproverName, Notes: &v.ApproverNotes},
		Signature:          SignatureState{Empty: v.SignatureEmpty, State: string(v.SignatureLock)},
		Submission:         Submission{State: string(v.Submission)},
		CanSubmit:          v.CanSubmit(),
	}
	if v.LoadFailure != "" {
		answer.LoadFailure = &v.LoadFailure
	}
	if v.Document != nil {
		answer.Document = toDocument(v.Document)
	}
	if v.Confirmation != "" {
		answer.Submission.Confirmation = &v.Confirmation
	}
	if v.SubmissionFailure != "" {
		answer.Submission.Failure = &v.SubmissionFailure
	}
	if r := v.Receipt; r != nil {
		answer.Submission.Receipt = &Receipt{
			DocketId:            r.DocumentID,
			ClientName:          r.ApproverName,
			ClientEmail:         r.ApproverEmail,
			ClientNotes:         r.ApproverNotes,
			ClientSignature:     r.Signature,
			ClientSignTimestamp: r.SignedAt.Format(time.RFC3339),
		}
	}
	if n := v.Notice; n != nil {
		answer.Notice = &Notice{
			Type:      string(n.Kind),
			Message:   n.Message,
			ExpiresAt: n.ExpiresAt().Format(time.RFC3339),
		}
	}
	return answer
}

func toDocument(r *document.Record) *Document {
	doc := &Document{
		DocketId:       r.DocumentID,
		ProjectName:    r.ProjectName,
		IssueDate:      r.IssueDate,
		OwnerName:      r.OwnerName,
		ApproverEmail:  r.ApproverEmail,
		OwnerSignature: r.OwnerSignatureImage,
		LineItems:      []LineItem{},
	}
	for _, item := range r.LineItems {
		doc.LineItems = append(doc.LineItems, LineItem{
			ResourceType:      string(item.ResourceType),
			ResourceId:        item.ResourceID,
			RoleOrDescription: item.RoleOrDescription,
			Quantity:          item.Quantity,
			UnitOfMeasure:     item.UnitOfMeasure,
			ScopeNote:         item.ScopeNote,
		})
	}
	return doc
}
