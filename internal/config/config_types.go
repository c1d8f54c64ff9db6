package config

import "time"

// AppConfig 애플리케이션의 모든 설정을 담는 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	OpenAI     OpenAIConfig     `json:"openai"`
	Shopify    ShopifyConfig    `json:"shopify"`
	Mailjet    MailjetConfig    `json:"mailjet"`
	Recipients RecipientsConfig `json:"recipients"`
	API        APIConfig        `json:"api"`
	Monitor    MonitorConfig    `json:"monitor"`
	Telegram   TelegramConfig   `json:"telegram"`
}

// OpenAIConfig 명령어 해석에 사용하는 언어 모델 API 설정
type OpenAIConfig struct {
	APIKey      string        `json:"api_key" validate:"required"`
	BaseURL     string        `json:"base_url" validate:"required,base_url"`
	Model       string        `json:"model" validate:"required"`
	Temperature float64       `json:"temperature" validate:"gte=0,lte=2"`
	Timeout     time.Duration `json:"timeout" validate:"gt=0"`
}

// ShopifyConfig 할인 규칙을 생성할 커머스 플랫폼(Shopify Admin REST API) 설정
type ShopifyConfig struct {
	StoreURL    string        `json:"store_url" validate:"required,base_url"`
	AccessToken string        `json:"access_token" validate:"required"`
	APIVersion  string        `json:"api_version" validate:"required,shopify_api_version"`
	Timeout     time.Duration `json:"timeout" validate:"gt=0"`
}

// MailjetConfig 할인 안내 메일을 발송할 메일 API 설정
type MailjetConfig struct {
	APIKey      string        `json:"api_key" validate:"required"`
	SecretKey   string        `json:"secret_key" validate:"required"`
	BaseURL     string        `json:"base_url" validate:"required,base_url"`
	SenderEmail string        `json:"sender_email" validate:"required,email"`
	SenderName  string        `json:"sender_name" validate:"required"`
	Timeout     time.Duration `json:"timeout" validate:"gt=0"`
}

// RecipientsConfig 수신자 목록 저장소 설정
type RecipientsConfig struct {
	File string `json:"file" validate:"required"`
}

// APIConfig REST API 서버 설정
type APIConfig struct {
	BasePath           string        `json:"base_path" validate:"required,startswith=/"`
	WS                 WSConfig      `json:"ws"`
	CORS               CORSConfig    `json:"cors"`
	RequestTimeout     time.Duration `json:"request_timeout" validate:"gt=0"`
	StatusProbeTimeout time.Duration `json:"status_probe_timeout" validate:"gt=0"`
}

// WSConfig 웹 서버 포트 설정
type WSConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// MonitorConfig 외부 API 상태를 주기적으로 점검하는 모니터 설정
type MonitorConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
}

// TelegramConfig 운영자 알림용 텔레그램 봇 설정
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}
