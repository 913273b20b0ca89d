package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/rock-bullion-api/internal/infra/queue"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func newTestSender(d dialer) *EmailSender {
	s := NewEmailSender("smtp.example.com", 587, "user", "pass", "no-reply@rockbullion.com", "sales@rockbullion.com")
	s.dialer = d
	return s
}

func testPayload() queue.LeadCreatedPayload {
	return queue.LeadCreatedPayload{
		LeadID:             "b7d3c0de-0000-4000-8000-000000000001",
		FullName:           "John Test Smith",
		Email:              "john.test@example.com",
		Country:            "United States",
		ConsultationMethod: "phone",
		Message:            "Interested in 1kg gold bars",
		CreatedAt:          time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC),
	}
}

func TestNotifyLeadSendsToSalesInbox(t *testing.T) {
	d := &fakeDialer{}

	err := newTestSender(d).NotifyLead(context.Background(), testPayload())

	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"no-reply@rockbullion.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"sales@rockbullion.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"john.test@example.com"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{"New inquiry: John Test Smith"}, m.GetHeader("Subject"))

	var raw strings.Builder
	_, err = m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "United States")
	assert.NotContains(t, raw.String(), "Phone</strong>", "empty optional fields are not rendered")
}

func TestNotifyLeadEscapesUserInput(t *testing.T) {
	d := &fakeDialer{}
	payload := testPayload()
	payload.Message = "<script>x</script>"

	require.NoError(t, newTestSender(d).NotifyLead(context.Background(), payload))

	var raw strings.Builder
	_, err := d.sent[0].WriteTo(&raw)
	require.NoError(t, err)
	assert.NotContains(t, raw.String(), "<script>")
}

func TestNotifyLeadDialError(t *testing.T) {
	d := &fakeDialer{err: errors.New("dial tcp: connection refused")}

	err := newTestSender(d).NotifyLead(context.Background(), testPayload())

	assert.ErrorContains(t, err, "failed to send SMTP email")
}

func TestNotifyLeadCanceledContext(t *testing.T) {
	d := &fakeDialer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestSender(d).NotifyLead(ctx, testPayload())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}

func TestEmailSenderChannel(t *testing.T) {
	assert.Equal(t, "email", newTestSender(&fakeDialer{}).Channel())
}
