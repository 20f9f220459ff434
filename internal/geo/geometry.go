package geo

import (
	"encoding/json"
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/harborwatch/route-risk/internal/model"
)

// routeGeometrySegments is the number of great-circle segments used when
// rendering a route LineString.
const routeGeometrySegments = 32

// RouteGeometry renders the great-circle path between two ports as a GeoJSON
// LineString in lon/lat order, with intermediate points interpolated along
// the sphere.
func RouteGeometry(a, b model.Coordinates) (json.RawMessage, error) {
	coords := make([]geom.Coord, 0, routeGeometrySegments+1)
	for i := 0; i <= routeGeometrySegments; i++ {
		p := interpolate(a, b, float64(i)/routeGeometrySegments)
		coords = append(coords, geom.Coord{p.Lon, p.Lat})
	}

	flat := make([]float64, 0, len(coords)*2)
	for _, c := range coords {
		flat = append(flat, c...)
	}
	ls := geom.NewLineStringFlat(geom.XY, flat).SetSRID(4326)

	raw, err := geojson.Marshal(ls)
	if err != nil {
		return nil, eris.Wrap(err, "geo: encode route geometry")
	}
	return raw, nil
}

// interpolate returns the point a fraction f along the great circle from a
// to b. Antipodal endpoints have no unique path; the degenerate zero-angle
// case falls back to the start point.
func interpolate(a, b model.Coordinates, f float64) model.Coordinates {
	lat1, lon1 := radians(a.Lat), radians(a.Lon)
	lat2, lon2 := radians(b.Lat), radians(b.Lon)

	d := Distance(a, b) / earthRadiusKm // central angle
	if d == 0 {
		return a
	}
	sinD := math.Sin(d)
	if sinD == 0 {
		return a
	}

	p := math.Sin((1-f)*d) / sinD
	q := math.Sin(f*d) / sinD

	x := p*math.Cos(lat1)*math.Cos(lon1) + q*math.Cos(lat2)*math.Cos(lon2)
	y := p*math.Cos(lat1)*math.Sin(lon1) + q*math.Cos(lat2)*math.Sin(lon2)
	z := p*math.Sin(lat1) + q*math.Sin(lat2)

	return model.Coordinates{
		Lat: math.Atan2(z, math.Sqrt(x*x+y*y)) * 180 / math.Pi,
		Lon: math.Atan2(y, x) * 180 / math.Pi,
	}
}
