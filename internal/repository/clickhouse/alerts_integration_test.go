package clickhouse

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

func newAlert(id string, createdAt time.Time) model.Alert {
	return model.Alert{
		ID:          id,
		Type:        model.AlertHighGasPrice,
		Severity:    model.SeverityWarning,
		Message:     "gas price above threshold",
		Value:       150,
		Threshold:   100,
		BlockNumber: 42,
		CreatedAt:   createdAt,
	}
}

func (s *RepositorySuite) TestAlertLifecycle() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	older := newAlert("alert-1", base)
	newer := newAlert("alert-2", base.Add(time.Second))

	s.Require().NoError(s.repo.CreateAlert(s.testCtx, older))
	s.Require().NoError(s.repo.CreateAlert(s.testCtx, newer))

	alerts, err := s.repo.ListAlerts(s.testCtx, 10)
	s.Require().NoError(err)
	s.Require().Len(alerts, 2)
	s.Equal("alert-2", alerts[0].ID)
	s.Equal(model.AlertHighGasPrice, alerts[0].Type)
	s.Equal(model.SeverityWarning, alerts[0].Severity)

	older.Acknowledged = true
	s.Require().NoError(s.repo.UpdateAlert(s.testCtx, older))

	got, err := s.repo.AlertByID(s.testCtx, "alert-1")
	s.Require().NoError(err)
	s.True(got.Acknowledged)
	s.True(older.CreatedAt.Equal(got.CreatedAt))

	s.Require().NoError(s.repo.DeleteAlert(s.testCtx, "alert-2"))

	alerts, err = s.repo.ListAlerts(s.testCtx, 10)
	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	s.Equal("alert-1", alerts[0].ID)

	_, err = s.repo.AlertByID(s.testCtx, "alert-2")
	s.True(errors.Is(err, ErrNotFound))
}

func (s *RepositorySuite) TestListAlertsLimit() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, id := range []string{"a", "b", "c"} {
		s.Require().NoError(s.repo.CreateAlert(s.testCtx, newAlert(id, base.Add(time.Duration(i)*time.Second))))
	}

	alerts, err := s.repo.ListAlerts(s.testCtx, 2)
	s.Require().NoError(err)
	s.Require().Len(alerts, 2)
	s.Equal("c", alerts[0].ID)
	s.Equal("b", alerts[1].ID)
}

func (s *RepositorySuite) TestPing() {
	s.Require().NoError(s.repo.Ping(s.testCtx))
}
