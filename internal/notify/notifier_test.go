package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notify.Message
	err      error
	delay    time.Duration
}

func (r *recordingNotifier) Notify(ctx context.Context, msg notify.Message) error {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return r.err
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

func TestEmailNotifier_AlwaysSendsToOperator(t *testing.T) {
	var payload map[string]interface{}
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	n := notify.NewEmailNotifier(&config.EmailConfig{
		APIURL:          server.URL,
		APIKey:          "key",
		From:            "web@dsp.test",
		OperatorAddress: "taller@dsp.test",
		TimeoutSeconds:  5,
	})

	err := n.Notify(context.Background(), notify.Message{Subject: "Hola", HTML: "<p>x</p>", ReplyTo: "cliente@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer key", auth)
	assert.Equal(t, []interface{}{"taller@dsp.test"}, payload["to"])
	assert.Equal(t, "cliente@example.com", payload["reply_to"])
	assert.Equal(t, "Hola", payload["subject"])
}

func TestEmailNotifier_ReportsAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer server.Close()

	n := notify.NewEmailNotifier(&config.EmailConfig{APIURL: server.URL, OperatorAddress: "taller@dsp.test"})
	err := n.Notify(context.Background(), notify.Message{Subject: "Hola"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestTelegramNotifier(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer server.Close()

	n, err := notify.NewTelegramNotifier("123:abc", 42, bot.WithServerURL(server.URL))
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), notify.Message{Subject: "Nueva solicitud", Text: "Ana <Ford>"}))
	assert.True(t, strings.HasSuffix(path, "/sendMessage"), path)
}

func TestMulti_JoinsErrors(t *testing.T) {
	ok := &recordingNotifier{}
	failing := &recordingNotifier{err: errors.New("down")}

	err := notify.Multi{failing, ok}.Notify(context.Background(), notify.Message{Subject: "x"})
	assert.Error(t, err)
	assert.Equal(t, 1, ok.count())
	assert.Equal(t, 1, failing.count())
}

func TestDispatcher_DoesNotBlockAndLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	slow := &recordingNotifier{err: errors.New("smtp down"), delay: 50 * time.Millisecond}
	d := notify.NewDispatcher(slow, time.Second, zap.New(core))

	start := time.Now()
	d.Send(notify.Message{Subject: "uno"})
	d.Send(notify.Message{Subject: "dos"})
	assert.Less(t, time.Since(start), 40*time.Millisecond)

	d.Close()
	assert.Equal(t, 2, slow.count())
	assert.Equal(t, 2, logs.FilterMessage("failed to deliver notification").Len())

	d.Send(notify.Message{Subject: "tarde"})
	assert.Equal(t, 2, slow.count())
}

func TestIntakeMessage(t *testing.T) {
	client := &domain.Client{Name: "Ana <Admin>", Email: "ana@example.com", Phone: "11"}
	req := &domain.Request{
		ServiceLine:  domain.ServiceLinePuntual,
		Status:       domain.StatusPending,
		VehicleMake:  "Ford",
		VehicleModel: "Focus",
		VehicleYear:  2018,
		Photos:       domain.StringList{"https://files/a.jpg"},
	}

	msg := notify.IntakeMessage(req, client, 1)
	assert.Contains(t, msg.Subject, "Presupuesto puntual")
	assert.Contains(t, msg.HTML, "Ford Focus 2018")
	assert.Contains(t, msg.HTML, "Ana &lt;Admin&gt;")
	assert.Contains(t, msg.HTML, "1 no se pudieron subir")
	assert.Equal(t, "ana@example.com", msg.ReplyTo)
}
