package datesort

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/fatih/color"
)

const maxBodySize = 1 << 20

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusColor(code int) *color.Color {
	switch {
	case code >= 500:
		return color.New(color.FgRed)
	case code >= 400:
		return color.New(color.FgYellow)
	case code >= 300:
		return color.New(color.FgCyan)
	}
	return color.New(color.FgGreen)
}

func withAccessLog(next http.Handler) http.Handler {
	white := color.New(color.FgWhite).Add(color.Bold).SprintFunc()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)

		chalk := statusColor(lrw.statusCode).SprintFunc()
		code := strconv.Itoa(lrw.statusCode)
		log.Printf("%s %s %s\n", chalk(code), white(r.Method), r.RequestURI)
	})
}

// Handler returns the HTTP surface of e: an HTML report on / and a
// sorting endpoint on /sort.
func (e *Engine) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", e.serveReport)
	mux.HandleFunc("/sort", e.serveSort)
	return mux
}

func (e *Engine) serveReport(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := e.Report().Render(w)
	if err != nil {
		log.Println("report:", err)
	}
}

func (e *Engine) serveSort(w http.ResponseWriter, r *http.Request) {
	var dates []CalendarDate
	switch r.Method {
	case http.MethodGet:
		for _, v := range r.URL.Query()["date"] {
			d, err := ParseCalendarDate(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			dates = append(dates, d)
		}
	case http.MethodPost:
		dl, err := ParseDateList(http.MaxBytesReader(w, r.Body, maxBodySize))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dates = dl.Dates
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	p := &Printer{Layout: e.Config().Format}
	err := p.Print(w, SortDates(dates))
	if err != nil {
		log.Println("sort:", err)
	}
}
