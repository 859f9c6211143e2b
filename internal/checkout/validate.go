package checkout

import (
	"regexp"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// FieldErrors maps a form field to its validation message. Empty means the
// form passed.
type FieldErrors map[string]string

var (
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateCustomerInfo applies the info-form rules. Validation always runs
// before any network call; a non-empty result short-circuits the submit.
func ValidateCustomerInfo(info domain.CustomerInfo) FieldErrors {
	errs := FieldErrors{}

	switch {
	case info.Phone == "":
		errs["phone"] = "Vui lòng nhập số điện thoại"
	case !phoneRe.MatchString(info.Phone):
		errs["phone"] = "Số điện thoại không hợp lệ"
	}

	switch {
	case info.Email == "":
		errs["email"] = "Vui lòng nhập email"
	case !emailRe.MatchString(info.Email):
		errs["email"] = "Email không hợp lệ"
	}

	if info.FullName == "" {
		errs["full_name"] = "Vui lòng nhập họ tên"
	}

	if info.Province == "" {
		errs["province"] = "Vui lòng chọn tỉnh/thành phố"
	}

	if info.District == "" {
		errs["district"] = "Vui lòng chọn quận/huyện"
	} else if info.Province != "" {
		// district must be a child of the selected province
		if _, _, ok := ResolveRegion(info.Province, info.District); !ok {
			errs["district"] = "Quận/huyện không thuộc tỉnh/thành phố đã chọn"
		}
	}

	if info.Address == "" {
		errs["address"] = "Vui lòng nhập địa chỉ"
	}

	return errs
}
