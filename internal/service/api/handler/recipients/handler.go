// Package recipients 할인 안내 메일 수신자 관리 엔드포인트 핸들러를 제공합니다.
package recipients

import (
	"context"
	"net/url"
	"strings"

	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/handler"
	"github.com/darkkaiser/discount-bot/internal/service/api/httputil"
	"github.com/darkkaiser/discount-bot/internal/service/api/model/request"
	"github.com/darkkaiser/discount-bot/internal/service/api/model/response"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/labstack/echo/v4"
)

// Store 수신자 저장소
type Store interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, email string) ([]string, error)
	Delete(ctx context.Context, email string) ([]string, error)
}

// Handler 수신자 관리 핸들러
type Handler struct {
	store Store
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(store Store) *Handler {
	if store == nil {
		panic(constants.PanicMsgRecipientStoreRequired)
	}

	return &Handler{store: store}
}

// ListHandler godoc
// @Summary 수신자 목록
// @Description 할인 안내 메일 수신자 전체 목록을 반환합니다.
// @Tags Recipient
// @Produce json
// @Success 200 {object} response.EmailsResponse "수신자 목록"
// @Failure 500 {object} response.ErrorResponse "수신자 파일을 읽을 수 없음"
// @Router /api/emails [get]
func (h *Handler) ListHandler(c echo.Context) error {
	emails, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}

	return h.respond(c, emails)
}

// AddHandler godoc
// @Summary 수신자 추가
// @Description 수신자를 추가하고 전체 목록을 반환합니다. 이미 있는 주소를 다시 추가해도 한 번만 저장됩니다.
// @Tags Recipient
// @Accept json
// @Produce json
// @Param email body request.EmailRequest true "추가할 이메일 주소"
// @Success 200 {object} response.EmailsResponse "수신자 목록"
// @Failure 400 {object} response.ErrorResponse "이메일 누락 또는 형식 오류"
// @Failure 500 {object} response.ErrorResponse "수신자 파일을 쓸 수 없음"
// @Router /api/emails [post]
func (h *Handler) AddHandler(c echo.Context) error {
	req := new(request.EmailRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return httputil.NewBadRequestError(constants.ErrMsgEmailRequired)
	}
	if err := handler.ValidateRequest(req); err != nil {
		return err
	}

	emails, err := h.store.Add(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	h.log(c).WithField("email", req.Email).Info("수신자 추가 요청 처리 완료")

	return h.respond(c, emails)
}

// DeleteHandler godoc
// @Summary 수신자 삭제
// @Description 수신자를 삭제하고 전체 목록을 반환합니다. 없는 주소를 삭제해도 에러가 아닙니다.
// @Tags Recipient
// @Produce json
// @Param email path string true "삭제할 이메일 주소"
// @Success 200 {object} response.EmailsResponse "수신자 목록"
// @Failure 500 {object} response.ErrorResponse "수신자 파일을 쓸 수 없음"
// @Router /api/emails/{email} [delete]
func (h *Handler) DeleteHandler(c echo.Context) error {
	email := c.Param("email")
	if unescaped, err := url.PathUnescape(email); err == nil {
		email = unescaped
	}

	emails, err := h.store.Delete(c.Request().Context(), strings.TrimSpace(email))
	if err != nil {
		return err
	}

	h.log(c).WithField("email", email).Info("수신자 삭제 요청 처리 완료")

	return h.respond(c, emails)
}

func (h *Handler) respond(c echo.Context, emails []string) error {
	return httputil.OK(c, response.EmailsResponse{
		Success: true,
		Emails:  httputil.NonNil(emails),
	})
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
