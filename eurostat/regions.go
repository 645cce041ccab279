package eurostat

// regionNames maps Eurostat geo codes to the display names used in reports.
// Eurostat uses EL for Greece.
var regionNames = map[string]string{
	"AT":   "Österreich",
	"BE":   "Belgien",
	"BG":   "Bulgarien",
	"CY":   "Zypern",
	"CZ":   "Tschechien",
	"DE":   "Deutschland",
	"DK":   "Dänemark",
	"EE":   "Estland",
	"EL":   "Griechenland",
	"ES":   "Spanien",
	"FI":   "Finnland",
	"FR":   "Frankreich",
	"HR":   "Kroatien",
	"HU":   "Ungarn",
	"IE":   "Irland",
	"IT":   "Italien",
	"LT":   "Litauen",
	"LU":   "Luxemburg",
	"LV":   "Lettland",
	"MT":   "Malta",
	"NL":   "Niederlande",
	"PL":   "Polen",
	"PT":   "Portugal",
	"RO":   "Rumänien",
	"SE":   "Schweden",
	"SI":   "Slowenien",
	"SK":   "Slowakei",
	"EA20": "Eurozone",
	"EA19": "Eurozone",
}

// EUCountries lists the geo codes of the EU member states, used for the
// EU-wide heatmap.
var EUCountries = []string{
	"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "EL", "ES", "FI", "FR",
	"HR", "HU", "IE", "IT", "LT", "LU", "LV", "MT", "NL", "PL", "PT", "RO",
	"SE", "SI", "SK",
}

// RegionName returns the display name for a geo code, falling back to the
// code itself for regions without a configured name.
func RegionName(geo string) string {
	if name, ok := regionNames[geo]; ok {
		return name
	}
	return geo
}
