package apperr

import (
	"errors"
	"net/http"
)

// ==================== Codes ====================

// Code identifies a business failure and the HTTP status it renders as.
type Code struct {
	Name    string
	Status  int
	Message string
}

var (
	// 404
	StoreNotFound    = Code{"STORE_NOT_FOUND", http.StatusNotFound, "해당 가게를 찾을 수 없습니다."}
	StoryNotFound    = Code{"STORY_NOT_FOUND", http.StatusNotFound, "해당 스토리를 찾을 수 없습니다."}
	MemberNotFound   = Code{"MEMBER_NOT_FOUND", http.StatusNotFound, "해당 회원을 찾을 수 없습니다."}
	BookmarkNotFound = Code{"BOOKMARK_NOT_FOUND", http.StatusNotFound, "해당 북마크를 찾을 수 없습니다."}

	// 400
	BadRequest               = Code{"BAD_REQUEST", http.StatusBadRequest, "잘못된 요청입니다."}
	InvalidStoreCategory     = Code{"INVALID_STORE_CATEGORY", http.StatusBadRequest, "유효하지 않은 가게 카테고리입니다."}
	InvalidStoreKakaoID      = Code{"INVALID_STORE_KAKAO_ID", http.StatusBadRequest, "가게의 카카오 ID가 비어 있습니다."}
	InvalidStoreName         = Code{"INVALID_STORE_NAME", http.StatusBadRequest, "가게 이름이 비어 있습니다."}
	InvalidStoreCoordinates  = Code{"INVALID_STORE_COORDINATES", http.StatusBadRequest, "가게 좌표가 범위를 벗어났습니다."}
	InvalidInterestArea      = Code{"INVALID_INTEREST_AREA", http.StatusBadRequest, "유효하지 않은 관심 지역입니다."}
	InvalidSocialID          = Code{"INVALID_SOCIAL_ID", http.StatusBadRequest, "소셜 ID가 비어 있습니다."}
	InvalidMobilePhoneNumber = Code{"INVALID_MOBILE_PHONE_NUMBER", http.StatusBadRequest, "유효하지 않은 휴대폰 번호입니다."}
	InvalidMarketingConsent  = Code{"INVALID_MARKETING_CONSENT", http.StatusBadRequest, "마케팅 수신 동의 여부가 필요합니다."}
	InvalidMenuName          = Code{"INVALID_MENU_NAME", http.StatusBadRequest, "메뉴 이름이 비어 있습니다."}
	InvalidMenuLength        = Code{"INVALID_MENU_LENGTH", http.StatusBadRequest, "메뉴 이름이 너무 깁니다."}
	InvalidMenuPrice         = Code{"INVALID_MENU_PRICE", http.StatusBadRequest, "메뉴 가격은 1원 이상이어야 합니다."}
	InvalidMenuDiscountPrice = Code{"INVALID_MENU_DISCOUNT_PRICE", http.StatusBadRequest, "할인 가격이 유효하지 않습니다."}
	InvalidMenuDiscountTime  = Code{"INVALID_MENU_DISCOUNT_TIME", http.StatusBadRequest, "할인 시작 시간이 종료 시간보다 늦습니다."}
	InvalidStoryStore        = Code{"INVALID_STORY_STORE", http.StatusBadRequest, "스토리의 가게 정보가 비어 있습니다."}
	InvalidStoryDescription  = Code{"INVALID_STORY_DESCRIPTION", http.StatusBadRequest, "스토리 내용이 비어 있습니다."}
	InvalidImageKey          = Code{"INVALID_IMAGE_KEY", http.StatusBadRequest, "이미지 키가 비어 있습니다."}
	StoryMemberRequired      = Code{"STORY_MEMBER_REQUIRED", http.StatusBadRequest, "스토리 작성자가 필요합니다."}
	BookmarkMemberRequired   = Code{"BOOKMARK_MEMBER_REQUIRED", http.StatusBadRequest, "북마크 회원 정보가 필요합니다."}
	BookmarkStoreRequired    = Code{"BOOKMARK_STORE_REQUIRED", http.StatusBadRequest, "북마크 가게 정보가 필요합니다."}

	// 409
	DuplicateNickname     = Code{"DUPLICATE_NICKNAME", http.StatusConflict, "이미 사용 중인 닉네임입니다."}
	DuplicatePhoneNumber  = Code{"DUPLICATE_PHONE_NUMBER", http.StatusConflict, "이미 사용 중인 전화번호입니다."}
	BookmarkAlreadyExists = Code{"BOOKMARK_ALREADY_EXISTS", http.StatusConflict, "이미 북마크한 가게입니다."}

	// 401 / 429
	UnauthorizedMember = Code{"UNAUTHORIZED_MEMBER", http.StatusUnauthorized, "인증되지 않은 회원입니다."}
	ExpiredToken       = Code{"EXPIRED_TOKEN", http.StatusUnauthorized, "만료된 토큰입니다."}
	TooManyRequests    = Code{"TOO_MANY_REQUESTS", http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요."}

	// 5xx
	MapServerError               = Code{"MAP_SERVER_ERROR", http.StatusBadGateway, "지도 서버와 통신 중 오류가 발생했습니다."}
	PresignedURLGenerationFailed = Code{"PRESIGNED_URL_GENERATION_FAILED", http.StatusBadGateway, "이미지 URL 생성에 실패했습니다."}
	InternalServerError          = Code{"INTERNAL_SERVER_ERROR", http.StatusInternalServerError, "서버 내부 오류가 발생했습니다."}
)

// ==================== BusinessError ====================

// BusinessError is the single error kind raised by domain and service code.
type BusinessError struct {
	Code  Code
	cause error
}

// New creates a BusinessError without a cause.
func New(code Code) *BusinessError {
	return &BusinessError{Code: code}
}

// Wrap keeps the infrastructure cause reachable through errors.Unwrap.
func Wrap(code Code, cause error) *BusinessError {
	return &BusinessError{Code: code, cause: cause}
}

func (e *BusinessError) Error() string {
	if e.cause != nil {
		return e.Code.Name + ": " + e.cause.Error()
	}
	return e.Code.Name
}

func (e *BusinessError) Unwrap() error {
	return e.cause
}

// Is matches any BusinessError carrying the same code name.
func (e *BusinessError) Is(target error) bool {
	other, ok := target.(*BusinessError)
	if !ok {
		return false
	}
	return other.Code.Name == e.Code.Name
}

// Is reports whether err is a BusinessError with the given code.
func Is(err error, code Code) bool {
	return errors.Is(err, New(code))
}

// From extracts the BusinessError from an error chain.
func From(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
