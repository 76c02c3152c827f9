package estimate

// Device is a catalog entry: a household appliance and its typical power draw.
type Device struct {
	Name         string `json:"name"`
	DefaultWatts int    `json:"default_watts"`
}

// Catalog device names.
const (
	AirConditioner = "에어컨"
	Refrigerator   = "냉장고"
	TV             = "TV"
	WashingMachine = "세탁기"
	Computer       = "컴퓨터"
	Microwave      = "전자레인지"
)

var catalog = []Device{
	{Name: AirConditioner, DefaultWatts: 1500},
	{Name: Refrigerator, DefaultWatts: 200},
	{Name: TV, DefaultWatts: 100},
	{Name: WashingMachine, DefaultWatts: 500},
	{Name: Computer, DefaultWatts: 300},
	{Name: Microwave, DefaultWatts: 1000},
}

var catalogIndex = func() map[string]Device {
	m := make(map[string]Device, len(catalog))
	for _, d := range catalog {
		m[d.Name] = d
	}
	return m
}()

var tips = map[string]string{
	AirConditioner: "에어컨은 26°C 이상으로 설정하고, 선풍기와 병행하면 전기 절약에 좋아요.",
	Refrigerator:   "냉장고 문을 자주 여닫지 않고, 적정 온도를 유지하세요.",
	TV:             "사용하지 않을 때는 플러그를 뽑아두면 대기전력을 줄일 수 있어요.",
}

const genericTip = "사용 후 전원을 끄고, 대기 전력을 줄이면 환경과 전기요금 모두 아낄 수 있어요."

// Catalog returns a copy of the device catalog in display order.
func Catalog() []Device {
	out := make([]Device, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Device, bool) {
	d, ok := catalogIndex[name]
	return d, ok
}

// TipFor returns the conservation tip for a device. Any name is accepted;
// devices without a dedicated tip get the generic one.
func TipFor(device string) string {
	if tip, ok := tips[device]; ok {
		return tip
	}
	return genericTip
}
