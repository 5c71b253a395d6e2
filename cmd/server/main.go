// Command server exposes the declension engine and the text utilities as
// a JSON REST API.
//
// Endpoints:
//
//	GET  /api/decline?stem=<stem>[&gender=m|f|n]
//	GET  /api/ending?stem=<stem>&name=<ending>
//	GET  /api/endings
//	POST /api/frequencies   body: {"text":"...","split_que":true}
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/declinatio"
	"github.com/cours-de-latin/declinatio/corpus"
	"github.com/cours-de-latin/declinatio/logging"
)

// ---- JSON response types ------------------------------------------------

type formJSON struct {
	Form    string `json:"form,omitempty"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

type caseJSON struct {
	Case   string `json:"case"`
	Abbrev string `json:"abbrev"`
	formJSON
}

type endingJSON struct {
	Ending      string `json:"ending"`
	Implemented bool   `json:"implemented"`
	formJSON
}

type paradigmResponse struct {
	Stem    string       `json:"stem"`
	Gender  string       `json:"gender"`
	Cases   []caseJSON   `json:"cases"`
	Endings []endingJSON `json:"endings"`
}

type endingResponse struct {
	Stem   string `json:"stem"`
	Ending string `json:"ending"`
	formJSON
}

type endingInfoJSON struct {
	Ending      string `json:"ending"`
	Implemented bool   `json:"implemented"`
}

type endingsResponse struct {
	Endings []endingInfoJSON `json:"endings"`
}

type frequencyJSON struct {
	Form  string `json:"form"`
	Count int    `json:"count"`
}

type frequenciesResponse struct {
	Tokens      int             `json:"tokens"`
	Frequencies []frequencyJSON `json:"frequencies"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toFormJSON(f declinatio.Form) formJSON {
	fj := formJSON{Form: f.Value, Outcome: string(f.Outcome)}
	if f.Err != nil {
		fj.Error = f.Err.Error()
	}
	return fj
}

func toParadigmResponse(p *declinatio.Paradigm) paradigmResponse {
	resp := paradigmResponse{
		Stem:    p.Noun.Stem.String(),
		Gender:  p.Noun.Gender.String(),
		Cases:   make([]caseJSON, 0, len(declinatio.Cases)),
		Endings: make([]endingJSON, 0, len(declinatio.Endings)),
	}
	for _, c := range declinatio.Cases {
		resp.Cases = append(resp.Cases, caseJSON{
			Case:     c.String(),
			Abbrev:   c.Abbrev(),
			formJSON: toFormJSON(p.Form(c)),
		})
	}
	for _, e := range declinatio.Endings {
		resp.Endings = append(resp.Endings, endingJSON{
			Ending:      string(e),
			Implemented: e.Implemented(),
			formJSON:    toFormJSON(p.Endings[e]),
		})
	}
	return resp
}

// outcomeStatus maps a derivation outcome to an HTTP status.
func outcomeStatus(o declinatio.Outcome) int {
	switch o {
	case declinatio.OutcomeOK:
		return http.StatusOK
	case declinatio.OutcomeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleDecline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		gender := declinatio.Feminine
		if g := r.URL.Query().Get("gender"); g != "" {
			var err error
			if gender, err = declinatio.ParseGender(g); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		noun, err := declinatio.NewNoun(r.URL.Query().Get("stem"), gender)
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or empty 'stem' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, toParadigmResponse(declinatio.NewParadigm(noun)))
	}
}

func handleEnding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		ending, err := declinatio.ParseEnding(r.URL.Query().Get("name"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		stem, err := declinatio.NewStem(r.URL.Query().Get("stem"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or empty 'stem' query parameter")
			return
		}
		fn, _ := ending.Func()
		value, err := fn(stem)
		form := declinatio.Form{Value: value, Outcome: declinatio.OutcomeOf(err), Err: err}
		writeJSON(w, outcomeStatus(form.Outcome), endingResponse{
			Stem:     stem.String(),
			Ending:   string(ending),
			formJSON: toFormJSON(form),
		})
	}
}

func handleEndings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		out := make([]endingInfoJSON, 0, len(declinatio.Endings))
		for _, e := range declinatio.Endings {
			out = append(out, endingInfoJSON{Ending: string(e), Implemented: e.Implemented()})
		}
		writeJSON(w, http.StatusOK, endingsResponse{Endings: out})
	}
}

func handleFrequencies(maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text     string `json:"text"`
			SplitQue bool   `json:"split_que"`
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		forms := corpus.FilterTokens(corpus.Tokens(body.Text), corpus.Options{SplitQue: body.SplitQue})
		freqs := corpus.Frequencies(forms)
		out := make([]frequencyJSON, 0, len(freqs))
		for _, f := range freqs {
			out = append(out, frequencyJSON{Form: f.Form, Count: f.Count})
		}
		writeJSON(w, http.StatusOK, frequenciesResponse{Tokens: len(forms), Frequencies: out})
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags every request with an X-Request-ID and logs its
// outcome.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		t0 := time.Now()
		next.ServeHTTP(rec, r)
		log.Info().
			Str("requestId", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", rec.status).
			Dur("duration", time.Since(t0)).
			Msg("request")
	})
}

func newHandler(conf *Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/decline", handleDecline())
	mux.HandleFunc("/api/ending", handleEnding())
	mux.HandleFunc("/api/endings", handleEndings())
	mux.HandleFunc("/api/frequencies", handleFrequencies(conf.MaxBodyBytes))

	c := cors.New(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return withRequestLog(c.Handler(mux))
}

// ---- main ---------------------------------------------------------------

// applyFlags overrides conf with the values set on the command line.
func applyFlags(conf *Config, cmd *cobra.Command, over *Config) {
	if cmd.Flags().Changed("addr") {
		conf.ListenAddress = over.ListenAddress
	}
	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = over.LogLevel
	}
	if cmd.Flags().Changed("log-path") {
		conf.LogPath = over.LogPath
	}
}

func serve(conf *Config) error {
	logFile, err := logging.Setup(conf.LogPath, conf.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logFile.Close()

	srv := &http.Server{
		Addr:         conf.ListenAddress,
		Handler:      newHandler(conf),
		ReadTimeout:  time.Duration(conf.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(conf.WriteTimeoutSecs) * time.Second,
	}
	log.Info().Str("addr", conf.ListenAddress).Msg("listening")
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func rootCmd() *cobra.Command {
	var (
		confPath string
		over     Config
	)
	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Serve the declension engine and the text utilities as a JSON API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(confPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			applyFlags(conf, cmd, &over)
			return serve(conf)
		},
	}
	cmd.Flags().StringVar(&confPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&over.ListenAddress, "addr", dfltListenAddress, "Listen address (overrides config)")
	cmd.Flags().StringVar(&over.LogLevel, "log-level", "info", "Log level: debug, info, warn/warning, error (overrides config)")
	cmd.Flags().StringVar(&over.LogPath, "log-path", "", "File to log to; stderr if empty (overrides config)")
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
