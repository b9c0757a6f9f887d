package geo

import "math"

// earthRadiusKm 地球平均半径（公里）
const earthRadiusKm = 6371.0

// Point 经纬度坐标点（单位：度）
type Point struct {
	Lat float64
	Lng float64
}

// DefaultOrigin 距离计算的默认参考点
// 上线城市的市中心坐标，可通过 geo 配置覆盖
var DefaultOrigin = Point{Lat: 43.7756, Lng: -79.2341}

// Distance 计算两点之间的大圆距离（haversine 公式），返回公里数
func Distance(a, b Point) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
