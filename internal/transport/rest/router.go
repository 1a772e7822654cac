package rest

import "net/http"

// APIPrefix is the mount point of the study API.
const APIPrefix = "/api/v1/study"

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Study  *StudyHandler
	Modes  *ModesHandler
}

// NewRouter registers all routes on a Go 1.22 pattern mux. api wraps the
// study API routes (auth, term loader); health probes stay unwrapped.
func NewRouter(h Handlers, api func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	studyMux := http.NewServeMux()
	registerStudy(studyMux, h.Study)
	registerModes(studyMux, h.Modes)

	var studyAPI http.Handler = studyMux
	if api != nil {
		studyAPI = api(studyAPI)
	}
	mux.Handle(APIPrefix+"/", http.StripPrefix(APIPrefix, studyAPI))

	return mux
}

func registerStudy(mux *http.ServeMux, h *StudyHandler) {
	mux.HandleFunc("GET /progress/{studySetID}", h.GetProgress)
	mux.HandleFunc("GET /progress/{studySetID}/due", h.GetDue)
	mux.HandleFunc("POST /progress/{studySetID}/terms/{termID}", h.RecordAnswer)
	mux.HandleFunc("GET /review/{studySetID}", h.GetReview)

	mux.HandleFunc("POST /session", h.StartSession)
	mux.HandleFunc("GET /session/{id}", h.GetSession)
	mux.HandleFunc("PUT /session/{id}", h.CompleteSession)
}

func registerModes(mux *http.ServeMux, h *ModesHandler) {
	mux.HandleFunc("GET /modes/flashcards/{studySetID}", h.GetFlashcards)
	mux.HandleFunc("PUT /modes/flashcards/{studySetID}/terms/{termID}/star", h.SetStar)
	mux.HandleFunc("POST /modes/flashcards/{studySetID}/terms/{termID}/flip", h.FlipCard)

	mux.HandleFunc("POST /modes/test", h.CreateTest)
	mux.HandleFunc("GET /modes/test/{id}", h.GetTest)
	mux.HandleFunc("POST /modes/test/{id}/submit", h.SubmitTest)

	mux.HandleFunc("POST /modes/match", h.CreateMatch)
	mux.HandleFunc("POST /modes/match/{id}/moves", h.SubmitMove)
	mux.HandleFunc("POST /modes/match/{id}/complete", h.CompleteMatch)

	mux.HandleFunc("POST /modes/gravity", h.CreateGravity)
	mux.HandleFunc("POST /modes/gravity/{id}/answers", h.SubmitGravityAnswer)
	mux.HandleFunc("POST /modes/gravity/{id}/complete", h.CompleteGravity)

	mux.HandleFunc("GET /modes/write/{studySetID}", h.GetWriteQuestions)
	mux.HandleFunc("POST /modes/write/{studySetID}/check", h.CheckWrite)

	mux.HandleFunc("POST /modes/learn", h.CreateLearn)
	mux.HandleFunc("GET /modes/learn/{id}/next", h.NextLearnQuestion)
	mux.HandleFunc("POST /modes/learn/{id}/answers", h.AnswerLearn)
}
