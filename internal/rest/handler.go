package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/ownmsg/message-service/internal/config"
	api "github.com/ownmsg/message-service/internal/generated"
	"github.com/ownmsg/message-service/internal/model"
	"github.com/ownmsg/message-service/internal/pkg/validator"
)

type Handler struct {
	messageService MessageService
	userRepo       UserRepo
	identityClient IdentityClient
	jwtGenerator   JWTGenerator
	environment    string
}

func New(
	messageService MessageService,
	userRepo UserRepo,
	identityClient IdentityClient,
	jwtGenerator JWTGenerator,
	environment string,
) *Handler {
	return &Handler{
		messageService: messageService,
		userRepo:       userRepo,
		identityClient: identityClient,
		jwtGenerator:   jwtGenerator,
		environment:    environment,
	}
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := &model.SendMessageInput{
		SenderID:   req.SenderId,
		ReceiverID: req.ReceiverId,
		Content:    req.Message,
	}

	message, err := h.messageService.SendMessage(r.Context(), input)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			logger.Error(fmt.Sprintf("message validation failed: %v", err))
			h.writeValidationError(w, validationErr)
			return
		}

		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	response := api.SendMessageResponse{
		Message: "Message sent successfully",
		Data:    toAPIMessage(*message),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request, params api.GetMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	messages, err := h.messageService.ListMessages(r.Context(), resolveLimit(params.Limit))
	if err != nil {
		h.writeListError(w, logger, err)
		return
	}

	h.writeMessages(w, messages)
}

func (h *Handler) GetMessagesBySender(w http.ResponseWriter, r *http.Request, senderId string, params api.GetMessagesBySenderParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessagesBySender")

	messages, err := h.messageService.ListBySender(r.Context(), senderId, resolveLimit(params.Limit))
	if err != nil {
		h.writeListError(w, logger, err)
		return
	}

	h.writeMessages(w, messages)
}

func (h *Handler) GetMessagesByReceiver(w http.ResponseWriter, r *http.Request, receiverId string, params api.GetMessagesByReceiverParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessagesByReceiver")

	messages, err := h.messageService.ListByReceiver(r.Context(), receiverId, resolveLimit(params.Limit))
	if err != nil {
		h.writeListError(w, logger, err)
		return
	}

	h.writeMessages(w, messages)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Signup")

	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.PhoneNumber == "" || req.Username == "" || req.Password == "" {
		h.writeError(w, "phone number, username, and password are required", http.StatusBadRequest)
		return
	}

	phoneNumber := formatPhoneNumber(req.PhoneNumber)

	_, err := h.identityClient.LookupByPhone(r.Context(), phoneNumber)
	if err == nil {
		h.writeError(w, "user with this phone number already exists", http.StatusBadRequest)
		return
	}
	if !errors.Is(err, model.ErrIdentityNotFound) {
		logger.Error(fmt.Sprintf("failed to look up phone number: %v", err))
		h.writeError(w, "authentication service temporarily unavailable", http.StatusServiceUnavailable)
		return
	}

	response := api.SignupResponse{
		Message: "Registration data validated. Please verify your phone number with OTP.",
		Data: api.SignupData{
			PhoneNumber: phoneNumber,
			Username:    req.Username,
		},
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("VerifyOTP")

	idToken, ok := bearerToken(r)
	if !ok {
		h.writeError(w, "no valid ID token provided", http.StatusUnauthorized)
		return
	}

	var req api.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	phoneNumber := formatPhoneNumber(req.PhoneNumber)

	token, err := h.identityClient.VerifyIDToken(r.Context(), idToken)
	if err != nil {
		if errors.Is(err, model.ErrIdentityUnavailable) {
			logger.Error(fmt.Sprintf("identity provider unavailable: %v", err))
			h.writeError(w, "authentication service temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		logger.Error(fmt.Sprintf("failed to verify ID token: %v", err))
		h.writeError(w, "invalid ID token", http.StatusUnauthorized)
		return
	}

	if token.PhoneNumber != phoneNumber {
		logger.Error("ID token phone number does not match request")
		h.writeError(w, "ID token phone number does not match", http.StatusForbidden)
		return
	}

	// the user must not exist yet; the identity is created only after a
	// successful OTP verification
	_, err = h.identityClient.LookupByPhone(r.Context(), phoneNumber)
	if err == nil {
		h.writeError(w, "user with this phone number already exists", http.StatusBadRequest)
		return
	}
	if !errors.Is(err, model.ErrIdentityNotFound) {
		logger.Error(fmt.Sprintf("failed to look up phone number: %v", err))
		h.writeError(w, "authentication service temporarily unavailable", http.StatusServiceUnavailable)
		return
	}

	subjectID, err := h.identityClient.CreateIdentity(r.Context(), phoneNumber, req.Username, req.Password)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create identity: %v", err))
		h.writeError(w, "failed to verify OTP and create user", http.StatusInternalServerError)
		return
	}

	user := &model.User{
		ID:              subjectID,
		Username:        req.Username,
		PhoneNumber:     phoneNumber,
		IsPhoneVerified: true,
	}

	if err = h.userRepo.AddUser(r.Context(), user); err != nil {
		logger.Error(fmt.Sprintf("failed to store user: %v", err))
		h.writeError(w, "failed to verify OTP and create user", http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("user created after OTP verification: %s", subjectID))

	response := api.VerifyOTPResponse{
		Message: "Phone number verified and user created successfully",
		User: api.AuthUser{
			Uid:             subjectID,
			Username:        req.Username,
			PhoneNumber:     phoneNumber,
			IsPhoneVerified: true,
		},
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.PhoneNumber == "" || req.Password == "" {
		h.writeError(w, "phone number and password are required", http.StatusBadRequest)
		return
	}

	phoneNumber := formatPhoneNumber(req.PhoneNumber)

	identity, err := h.identityClient.LookupByPhone(r.Context(), phoneNumber)
	if err != nil {
		if errors.Is(err, model.ErrIdentityNotFound) {
			h.writeError(w, "user not found", http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to look up phone number: %v", err))
		h.writeError(w, "authentication service temporarily unavailable", http.StatusServiceUnavailable)
		return
	}

	user, err := h.userRepo.GetUserByID(r.Context(), identity.SubjectID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			h.writeError(w, "user data not found", http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to get user: %v", err))
		h.writeError(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !user.IsPhoneVerified {
		h.writeError(w, "phone number not verified. Please verify your phone number first.", http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSessionToken(user.ID, user.Username, user.PhoneNumber)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate session token: %v", err))
		h.writeError(w, "login failed", http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("login successful for user %s", user.ID))

	response := api.LoginResponse{
		Message: "Login successful",
		User: api.AuthUser{
			Uid:             user.ID,
			Username:        user.Username,
			PhoneNumber:     user.PhoneNumber,
			IsPhoneVerified: user.IsPhoneVerified,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	response := api.HealthResponse{
		Status:      "OK",
		Message:     "message service is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.environment,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func resolveLimit(limit *int) int {
	if limit == nil {
		return validator.DefaultLimit
	}
	return *limit
}

// formatPhoneNumber normalizes a phone number into E.164 form. Bare
// 10-digit numbers default to the +91 country code.
func formatPhoneNumber(phoneNumber string) string {
	if strings.HasPrefix(phoneNumber, "+") {
		return phoneNumber
	}
	if len(phoneNumber) == 10 {
		return "+91" + phoneNumber
	}
	return "+" + phoneNumber
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}

	return token, true
}

func toAPIMessage(msg model.Message) api.Message {
	return api.Message{
		Id:         msg.ID,
		SenderId:   msg.SenderID,
		ReceiverId: msg.ReceiverID,
		Message:    msg.Content,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  msg.UpdatedAt,
		Status:     msg.Status,
	}
}

func (h *Handler) writeMessages(w http.ResponseWriter, messages model.MessageList) {
	data := make([]api.Message, len(messages))
	for i, msg := range messages {
		data[i] = toAPIMessage(msg)
	}

	response := api.GetMessagesResponse{
		Message: "Messages retrieved successfully",
		Data:    data,
		Count:   len(data),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) writeListError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		logger.Error(fmt.Sprintf("query validation failed: %v", err))
		h.writeValidationError(w, validationErr)
		return
	}

	logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
	h.writeError(w, "failed to get messages", http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, validationErr *model.ValidationError) {
	details := make([]api.FieldDetail, len(validationErr.Fields))
	for i, field := range validationErr.Fields {
		details[i] = api.FieldDetail{
			Field:   field.Field,
			Message: field.Message,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(api.Error{
		Error:   "validation failed",
		Details: &details,
	})
}
