package ingestion

// Place is a point of interest we keep weather observations for.
type Place struct {
	ID          string
	Name        string
	Description string
	Lat         float64
	Lng         float64
}

// MinnesotaPlaces is the seeded roster of outdoor-recreation
// destinations the refresh loop keeps current.
var MinnesotaPlaces = []Place{
	{ID: "mn-minneapolis", Name: "Minneapolis", Description: "Chain of Lakes and river parkways", Lat: 44.9778, Lng: -93.2650},
	{ID: "mn-saint-paul", Name: "Saint Paul", Description: "Mississippi River bluffs and city parks", Lat: 44.9537, Lng: -93.0900},
	{ID: "mn-duluth", Name: "Duluth", Description: "Lake Superior shoreline and Hawk Ridge", Lat: 46.7867, Lng: -92.1005},
	{ID: "mn-two-harbors", Name: "Two Harbors", Description: "North Shore lighthouses and agate beaches", Lat: 47.0227, Lng: -91.6715},
	{ID: "mn-gooseberry-falls", Name: "Gooseberry Falls", Description: "Waterfalls state park on the North Shore", Lat: 47.1397, Lng: -91.4690},
	{ID: "mn-lutsen", Name: "Lutsen", Description: "Sawtooth Mountains trails and gondola", Lat: 47.6644, Lng: -90.7135},
	{ID: "mn-grand-marais", Name: "Grand Marais", Description: "Harbor village, gateway to the Gunflint Trail", Lat: 47.7504, Lng: -90.3343},
	{ID: "mn-ely", Name: "Ely", Description: "Boundary Waters canoe entry points", Lat: 47.9032, Lng: -91.8671},
	{ID: "mn-international-falls", Name: "International Falls", Description: "Voyageurs National Park access", Lat: 48.6023, Lng: -93.4040},
	{ID: "mn-bemidji", Name: "Bemidji", Description: "First city on the Mississippi, lake country", Lat: 47.4736, Lng: -94.8803},
	{ID: "mn-itasca", Name: "Itasca State Park", Description: "Mississippi headwaters and old-growth pines", Lat: 47.2419, Lng: -95.2061},
	{ID: "mn-grand-rapids", Name: "Grand Rapids", Description: "Chippewa National Forest lakes", Lat: 47.2372, Lng: -93.5302},
	{ID: "mn-hibbing", Name: "Hibbing", Description: "Iron Range overlooks and trails", Lat: 47.4272, Lng: -92.9377},
	{ID: "mn-brainerd", Name: "Brainerd", Description: "Lakes-area resorts and Paul Bunyan Trail", Lat: 46.3580, Lng: -94.2008},
	{ID: "mn-alexandria", Name: "Alexandria", Description: "Glacial lakes and bike trails", Lat: 45.8852, Lng: -95.3775},
	{ID: "mn-st-cloud", Name: "St. Cloud", Description: "Mississippi river granite quarries", Lat: 45.5579, Lng: -94.1632},
	{ID: "mn-moorhead", Name: "Moorhead", Description: "Red River valley prairie", Lat: 46.8739, Lng: -96.7678},
	{ID: "mn-taylors-falls", Name: "Taylors Falls", Description: "St. Croix River cliffs and potholes", Lat: 45.4019, Lng: -92.6527},
	{ID: "mn-stillwater", Name: "Stillwater", Description: "Historic river town on the St. Croix", Lat: 45.0566, Lng: -92.8088},
	{ID: "mn-mankato", Name: "Mankato", Description: "Minnesota River valley ravines", Lat: 44.1636, Lng: -94.0000},
	{ID: "mn-rochester", Name: "Rochester", Description: "Zumbro valley parks and trails", Lat: 44.0121, Lng: -92.4802},
	{ID: "mn-winona", Name: "Winona", Description: "Driftless bluffs above the Mississippi", Lat: 44.0499, Lng: -91.6393},
}
