// Package discounts 자연어 할인 명령어와 커머스 플랫폼 조회 엔드포인트 핸들러를 제공합니다.
package discounts

import (
	"context"

	"github.com/darkkaiser/discount-bot/internal/service/api/constants"
	"github.com/darkkaiser/discount-bot/internal/service/api/handler"
	"github.com/darkkaiser/discount-bot/internal/service/api/httputil"
	"github.com/darkkaiser/discount-bot/internal/service/api/model/request"
	"github.com/darkkaiser/discount-bot/internal/service/api/model/response"
	"github.com/darkkaiser/discount-bot/internal/service/command"
	"github.com/darkkaiser/discount-bot/internal/service/discount"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/labstack/echo/v4"
)

// CommandService 명령어 미리보기와 실행을 제공하는 파사드
type CommandService interface {
	Preview(ctx context.Context, text string) (*discount.DiscountIntent, error)
	Execute(ctx context.Context, text string) (*command.Result, error)
}

// Catalog 커머스 플랫폼의 컬렉션과 할인 목록 조회
type Catalog interface {
	ListCollections(ctx context.Context) ([]discount.Collection, error)
	ListDiscounts(ctx context.Context) ([]discount.DiscountSummary, error)
}

// Handler 할인 명령어 및 조회 핸들러
type Handler struct {
	commands CommandService
	catalog  Catalog
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(commands CommandService, catalog Catalog) *Handler {
	if commands == nil {
		panic(constants.PanicMsgCommandServiceRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		commands: commands,
		catalog:  catalog,
	}
}

// CommandHandler godoc
// @Summary 할인 명령어 실행
// @Description 자연어 명령어를 해석하여 Shopify 에 할인을 생성하고, 등록된 수신자 전체에게 안내 메일을 발송합니다.
// @Description
// @Description 명령어를 해석하지 못하면 400 을 반환하며 Shopify 와 Mailjet 은 호출하지 않습니다.
// @Description 할인이 생성된 뒤 메일 발송만 실패하면 500 과 함께 intent, record 를 반환합니다 (부분 성공).
// @Tags Discount
// @Accept json
// @Produce json
// @Param command body request.CommandRequest true "자연어 할인 명령어"
// @Success 200 {object} response.CommandResponse "할인 생성 및 메일 발송 성공"
// @Failure 400 {object} response.ErrorResponse "명령어 해석 실패 또는 잘못된 요청"
// @Failure 500 {object} response.CommandErrorResponse "Shopify 호출 실패 또는 메일 발송 실패(부분 성공)"
// @Router /api/command [post]
func (h *Handler) CommandHandler(c echo.Context) error {
	req := new(request.CommandRequest)
	if err := handler.BindAndValidate(c, req); err != nil {
		return err
	}

	result, err := h.commands.Execute(c.Request().Context(), req.Command)
	if err != nil {
		if result == nil || result.Record == nil {
			return err
		}

		// 할인은 이미 생성되었으므로 호출자가 재시도로 중복 할인을 만들지 않도록 생성 결과를 함께 반환합니다.
		code, body := httputil.NewErrorResponse(err)

		h.log(c).WithFields(applog.Fields{
			"price_rule_id": result.Record.PlatformRuleID,
			"status_code":   code,
			"error":         err,
		}).Error("할인은 생성되었으나 안내 메일 발송이 실패하였습니다 (부분 성공)")

		return c.JSON(code, response.CommandErrorResponse{
			ErrorResponse: body,
			Intent:        result.Intent,
			Record:        result.Record,
		})
	}

	h.log(c).WithFields(applog.Fields{
		"price_rule_id": result.Record.PlatformRuleID,
		"type":          result.Record.Type,
		"recipients":    result.Recipients,
	}).Info("할인 명령어 실행 완료")

	return httputil.OK(c, response.CommandResponse{
		Success:    true,
		Intent:     result.Intent,
		Record:     result.Record,
		Recipients: result.Recipients,
	})
}

// ParseHandler godoc
// @Summary 할인 명령어 미리보기
// @Description 자연어 명령어를 해석한 결과만 반환합니다. 할인 생성이나 메일 발송은 하지 않습니다.
// @Description 운영자가 결과를 확인한 뒤 같은 명령어로 /api/command 를 호출합니다.
// @Tags Discount
// @Accept json
// @Produce json
// @Param command body request.CommandRequest true "자연어 할인 명령어"
// @Success 200 {object} response.ParseResponse "해석 결과"
// @Failure 400 {object} response.ErrorResponse "명령어 해석 실패 또는 잘못된 요청"
// @Router /api/parse [post]
func (h *Handler) ParseHandler(c echo.Context) error {
	req := new(request.CommandRequest)
	if err := handler.BindAndValidate(c, req); err != nil {
		return err
	}

	intent, err := h.commands.Preview(c.Request().Context(), req.Command)
	if err != nil {
		return err
	}

	return httputil.OK(c, response.ParseResponse{Success: true, Intent: intent})
}

// CollectionsHandler godoc
// @Summary 컬렉션 목록
// @Description Shopify 스토어의 커스텀 컬렉션 목록을 반환합니다.
// @Tags Discount
// @Produce json
// @Success 200 {object} response.CollectionsResponse "컬렉션 목록"
// @Failure 500 {object} response.ErrorResponse "Shopify 호출 실패"
// @Router /api/collections [get]
func (h *Handler) CollectionsHandler(c echo.Context) error {
	collections, err := h.catalog.ListCollections(c.Request().Context())
	if err != nil {
		return err
	}

	return httputil.OK(c, response.CollectionsResponse{
		Success:     true,
		Collections: httputil.NonNil(collections),
	})
}

// DiscountsHandler godoc
// @Summary 할인 목록
// @Description Shopify 의 가격 규칙으로부터 할인 목록을 재구성하여 반환합니다.
// @Tags Discount
// @Produce json
// @Success 200 {object} response.DiscountsResponse "할인 목록"
// @Failure 500 {object} response.ErrorResponse "Shopify 호출 실패"
// @Router /api/discounts [get]
func (h *Handler) DiscountsHandler(c echo.Context) error {
	discounts, err := h.catalog.ListDiscounts(c.Request().Context())
	if err != nil {
		return err
	}

	return httputil.OK(c, response.DiscountsResponse{
		Success:   true,
		Discounts: httputil.NonNil(discounts),
	})
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

