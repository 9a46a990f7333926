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

package dummy

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/goodsign/monday"

	"github.com/nuts-foundation/nuts-docket/logging"
	"github.com/nuts-foundation/nuts-docket/pkg/document"
)

// DefaultLoadDelay is the simulated latency of loading a document
const DefaultLoadDelay = 1000 * time.Millisecond

// DefaultSubmitDelay is the simulated latency of submitting a signature
const DefaultSubmitDelay = 1500 * time.Millisecond

// FailingDocumentMarker makes a load fail when it is part of the document identifier
const FailingDocumentMarker = "FAIL"

// FailingApproverMarker makes a submit fail when it is part of the approver name, regardless of case
const FailingApproverMarker = "fail"

const dateLayout = "02/01/2006"

const confirmationTemplate = "Thank you, {{{approver}}}. The docket {{{document}}} has been successfully signed and submitted. A confirmation email has been sent."

// ownerSignature is a 1x1 PNG used as the signature of the party who drew up the document
const ownerSignature = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// ErrLoadFailed is the simulated failure of a document load
var ErrLoadFailed = errors.New("This is a simulated failure to fetch docket data.")

// ErrSubmitFailed is the simulated failure of a submission
var ErrSubmitFailed = errors.New("Simulated network error: Could not connect to the server.")

// Demo is an entry point into the demo flow
type Demo struct {
	DocumentID string
	Kind       document.Kind
	Label      string
}

// Demos lists the documents which can be signed in the demo
var Demos = []Demo{
	{DocumentID: "H-123_Docket_2024-07-29", Kind: document.Primary, Label: "Load Supervisor Docket"},
	{DocumentID: "P-456_CREW_Docket_2024-07-29", Kind: document.Delegated, Label: "Load Crew Timesheet"},
}

var supervisorLineItems = []document.LineItem{
	{ResourceType: document.People, ResourceID: "John Doe", RoleOrDescription: "Supervisor", Quantity: "8", UnitOfMeasure: "hrs", ScopeNote: "Site Supervision"},
	{ResourceType: document.Plant, ResourceID: "UTR-01", RoleOrDescription: "Ute", Quantity: "1", UnitOfMeasure: "each", ScopeNote: "Site Transport"},
	{ResourceType: document.Materials, ResourceID: "Concrete", RoleOrDescription: "32 MPa", Quantity: "5", UnitOfMeasure: "m3", ScopeNote: "Footings"},
}

var crewLineItems = []document.LineItem{
	{ResourceType: document.People, ResourceID: "Jane Smith", RoleOrDescription: "Operator", Quantity: "10", UnitOfMeasure: "hrs", ScopeNote: "Excavation"},
	{ResourceType: document.People, ResourceID: "Peter Pan", RoleOrDescription: "Laborer", Quantity: "10", UnitOfMeasure: "hrs", ScopeNote: "Site Cleanup"},
	{ResourceType: document.Plant, ResourceID: "EXC-05", RoleOrDescription: "5t Excavator", Quantity: "8", UnitOfMeasure: "hrs", ScopeNote: "Trenching"},
}

// Dummy is a document loader and sink which always answers with canned data after a delay.
// Identifiers and names containing a failure marker make it fail, which is useful to exercise error flows.
// Dummy keeps no state, it can be shared by all sessions.
type Dummy struct {
	LoadDelay   time.Duration
	SubmitDelay time.Duration
	// NowFunc returns the issue date of loaded documents
	NowFunc func() time.Time
}

var _ document.Loader = (*Dummy)(nil)
var _ document.Sink = (*Dummy)(nil)

// New creates a Dummy with the given simulated latencies
func New(loadDelay, submitDelay time.Duration) *Dummy {
	return &Dummy{
		LoadDelay:   loadDelay,
		SubmitDelay: submitDelay,
		NowFunc:     time.Now,
	}
}

func (d Dummy) Load(ctx context.Context, documentID string, kind document.Kind) (*document.Record, error) {
	logging.Log().Debugf("Generating mock docket data for ID: %s, kind: %s", documentID, kind)

	if err := sleep(ctx, d.LoadDelay); err != nil {
		return nil, err
	}
	if strings.Contains(documentID, FailingDocumentMarker) {
		return nil, ErrLoadFailed
	}

	now := time.Now
	if d.NowFunc != nil {
		now = d.NowFunc
	}
	record := &document.Record{
		DocumentID:          documentID,
		Kind:                kind,
		IssueDate:           monday.Format(now(), dateLayout, monday.LocaleEnUS),
		OwnerSignatureImage: ownerSignature,
	}
	if kind == document.Delegated {
		record.ProjectName = "City Tunnel Project"
		record.OwnerName = "Crew Team Alpha"
		record.ApproverEmail = "approver@clientcorp.com"
		record.LineItems = append([]document.LineItem{}, crewLineItems...)
	} else {
		record.ProjectName = "Western Freeway Upgrade"
		record.OwnerName = "John Doe"
		record.ApproverEmail = "client.contact@majorroads.gov"
		record.LineItems = append([]document.LineItem{}, supervisorLineItems...)
	}
	return record, nil
}

func (d Dummy) Submit(ctx context.Context, documentID string, approverName string) (string, error) {
	logging.Log().Debugf("Submitting signature for docket %s by %s", documentID, approverName)

	if err := sleep(ctx, d.SubmitDelay); err != nil {
		return "", err
	}
	if strings.Contains(strings.ToLower(approverName), FailingApproverMarker) {
		return "", ErrSubmitFailed
	}
	return mustache.Render(confirmationTemplate, map[string]string{
		"approver": approverName,
		"document": documentID,
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
