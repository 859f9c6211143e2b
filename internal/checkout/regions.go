package checkout

// District is one selectable shipping district. Codes are what the form
// submits; names are the display strings snapshotted into shipping info.
type District struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Province struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

// provinces is the shipping region reference table. District choices are
// constrained to children of the selected province.
var provinces = []Province{
	{
		Code: "hanoi",
		Name: "Hà Nội",
		Districts: []District{
			{Code: "badinh", Name: "Ba Đình"},
			{Code: "hoankiem", Name: "Hoàn Kiếm"},
			{Code: "dongda", Name: "Đống Đa"},
			{Code: "caugiay", Name: "Cầu Giấy"},
		},
	},
	{
		Code: "hcm",
		Name: "TP. Hồ Chí Minh",
		Districts: []District{
			{Code: "district1", Name: "Quận 1"},
			{Code: "district2", Name: "Quận 2"},
			{Code: "district3", Name: "Quận 3"},
		},
	},
	{
		Code: "danang",
		Name: "Đà Nẵng",
		Districts: []District{
			{Code: "haichau", Name: "Hải Châu"},
			{Code: "thanhkhe", Name: "Thanh Khê"},
			{Code: "sontra", Name: "Sơn Trà"},
		},
	},
}

// Provinces returns the selectable shipping provinces.
func Provinces() []Province {
	return provinces
}

func findProvince(code string) *Province {
	for i := range provinces {
		if provinces[i].Code == code {
			return &provinces[i]
		}
	}
	return nil
}

func findDistrict(p *Province, code string) *District {
	if p == nil {
		return nil
	}
	for i := range p.Districts {
		if p.Districts[i].Code == code {
			return &p.Districts[i]
		}
	}
	return nil
}

// ResolveRegion maps province/district codes to their display names. The
// second result is false when either code is unknown or the district does
// not belong to the province.
func ResolveRegion(provinceCode, districtCode string) (provinceName, districtName string, ok bool) {
	p := findProvince(provinceCode)
	d := findDistrict(p, districtCode)
	if p == nil || d == nil {
		return "", "", false
	}
	return p.Name, d.Name, true
}
