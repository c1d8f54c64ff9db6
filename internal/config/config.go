package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자
	AppName string = "discount-bot"

	// DefaultFilename 실행 인자로 경로가 주어지지 않을 때 읽는 설정 파일명
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정 값을 덮어쓰는 환경 변수의 접두사
	// 예: DISCOUNT_SHOPIFY__ACCESS_TOKEN -> shopify.access_token
	EnvPrefix = "DISCOUNT_"
)

// newDefaultConfig 설정 파일에서 생략 가능한 항목들의 기본값을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		OpenAI: OpenAIConfig{
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-3.5-turbo-1106",
			Temperature: 0.2,
			Timeout:     60 * time.Second,
		},
		Shopify: ShopifyConfig{
			APIVersion: "2023-10",
			Timeout:    30 * time.Second,
		},
		Mailjet: MailjetConfig{
			BaseURL:    "https://api.mailjet.com",
			SenderName: "Discount Bot",
			Timeout:    30 * time.Second,
		},
		Recipients: RecipientsConfig{
			File: "data/emails.json",
		},
		API: APIConfig{
			BasePath:           "/api",
			WS:                 WSConfig{ListenPort: 5000},
			CORS:               CORSConfig{AllowOrigins: []string{"*"}},
			RequestTimeout:     120 * time.Second,
			StatusProbeTimeout: 5 * time.Second,
		},
		Monitor: MonitorConfig{
			Enabled:  false,
			TimeSpec: "0 */10 * * * *",
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 설정 파일을 읽어 AppConfig 를 생성합니다.
//
// 우선순위(낮음 -> 높음): 기본값 -> JSON 설정 파일 -> DISCOUNT_ 환경 변수
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)가 됩니다.
//
//	DISCOUNT_SHOPIFY__ACCESS_TOKEN -> shopify.access_token
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "애플리케이션 설정"); err != nil {
		return err
	}

	if err := c.API.CORS.validate(); err != nil {
		return err
	}

	return nil
}

func (c *CORSConfig) validate() error {
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// VerifyRecommendations 강제하지는 않지만 운영 시 주의가 필요한 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.WS.ListenPort))
	}

	if len(c.API.CORS.AllowOrigins) == 1 && c.API.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "CORS 허용 도메인이 와일드카드(*)로 설정되었습니다. 인증이 없는 API 이므로 운영 환경에서는 관리 화면의 도메인만 허용하는 것을 권장합니다")
	}

	if !c.Telegram.Enabled {
		warnings = append(warnings, "운영자 텔레그램 알림이 비활성화되어 있습니다. 메일 발송 실패를 로그로만 확인할 수 있습니다")
	}

	return warnings
}
