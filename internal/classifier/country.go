// =============================================================================
// Escheatment Mailing Preparation - Country Inference Heuristic
// =============================================================================
//
// Foreign records carry no country field; the country must be inferred from
// free text. The evidence is the Mailing City field and the last populated
// name/address line, tested against regex dispatch tables in fixed priority
// order: Canada first, then Mexico, then the other-foreign default.
//
// The exclusion keywords are a final veto, not a separate classification:
// some place names collide across countries (London Ontario vs London UK,
// Guadalupe in Mexico and in Spain), so a primary match is discarded when
// the city text also names the colliding country. The veto is checked
// against the city field for Canada and Mexico alike; that is the behavior
// the mailing counts have always been audited against, quirks included.
//
// The foreign set is sorted by city before inference. Classification is a
// pure function of each record's fields, so the sort exists to make output
// order (and any manual audit of the heuristic's decisions) reproducible
// regardless of input row order.
//
// =============================================================================

package classifier

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
)

// canadaPlaces lists Canadian provinces, territories and their major
// cities, matched as whole words against the mailing city.
var canadaPlaces = []string{
	"Canada", "Alberta", "Calgary", "Edmonton",
	"Strathcona County", "British Columbia", "Vancouver", "Surrey", "Burnaby", "Manitoba",
	"Winnipeg", "Brandon", "Springfield", "New Brunswick", "Moncton", "Saint John", "Fredericton",
	"Newfoundland and Labrador", "St. John's", "Conception Bay South", "Mount Pearl",
	"Northwest Territories", "Yellowknife", "Hay River", "Inuvik", "Nova Scotia",
	"Halifax", "Sydney", "Lunenburg", "Nunavut", "Iqaluit", "Arviat", "Rankin Inlet",
	"Ontario", "Toronto", "Ottawa", "Mississauga", "Prince Edward Island", "Charlottetown",
	"Summerside", "Stratford", "Quebec", "Montreal", "Quebec City", "Laval", "Saskatchewan",
	"Saskatoon", "Regina", "Prince Albert", "Yukon", "Whitehorse", "Dawson City", "Faro",
}

// mexicoPlaces lists Mexican states and cities, matched as whole words
// against the mailing city.
var mexicoPlaces = []string{
	"Chihuahua", "Sonora", "Coahuila",
	"Durango", "Oaxaca", "Tamaulipas", "Jalisco", "Zacatecas", "Baja California Sur",
	"Chiapas", "Veracruz", "Baja California", "Nuevo Leon", "Guerrero", "San Luis Potosi",
	"Michoacan", "Sinaloa", "Campeche", "Quintana Roo", "Yucatan", "Puebla", "Guanajuato",
	"Nayarit", "Tabasco", "Mexico", "Hidalgo", "Queretaro", "Colima", "Aguascalientes",
	"Morelos", "Tlaxcala", "Ciudad de Mexico", "Mexico City", "Ecatepec", "Guadalajara",
	"Puebla", "Juarez", "Tijuana", "Leon", "Monterrey", "Zapopan", "Nezahualcoyotl", "Culiacan",
	"Chihuahua", "Naucalpan", "Merida", "San Luis Potosi", "Aguascalientes", "Hermosillo",
	"Saltillo", "Mexicali", "Guadalupe", "Acapulco", "Tlalnepantla", "Cancun", "Queretaro",
	"Chimalhuacan", "Torreon", "Morelia", "Reynosa", "Tlaquepaque", "Tuxtla Gutierrez",
	"Durango", "Toluca", "Ciudad Lopez Mateos", "Cuautitlan Izcalli", "Ciudad Apodaca", "Matamoros",
	"San Nicolas de los Garza", "Veracruz", "Xalapa", "Tonala", "Mazatlan", "Irapuato",
	"Nuevo Laredo", "Xico", "Villahermosa", "General Escobedo", "Celaya", "Cuernavaca", "Tepic",
	"Ixtapaluca", "Ciudad Victoria", "Ciudad Obregon", "Tampico", "Ciudad Nicolas Romero",
	"Ensenada", "Coacalco de Berriozabal", "Santa Catarina", "Uruapan", "Gomez Palacio",
	"Los Mochis", "Pachuca", "Oaxaca", "Soledad de Graciano Sanchez", "Tehuacan", "Ojo de Agua",
	"Coatzacoalcos", "Campeche", "Monclova", "La Paz", "Nogales", "Buenavista", "Puerto Vallarta",
	"Tapachula", "Ciudad Madero", "San Pablo de las Salinas", "Chilpancingo", "Poza Rica",
	"Chicoloapan de Juarez", "Ciudad del Carmen", "Chalco de Diaz Covarrubias", "Jiutepec",
	"Salamanca", "San Luis Rio Colorado", "Cuautla", "Ciudad Benito Juarez", "Chetumal",
	"Piedras Negras", "Playa del Carmen", "Zamora", "Cordoba", "San Juan del Rio", "Colima",
	"Ciudad Acuna", "Manzanillo", "Zacatecas", "Veracruz", "Ciudad Valles", "Guadalupe",
	"San Pedro Garza Garcia", "Naucalpan", "Fresnillo", "Orizaba", "Miramar", "Iguala",
	"Delicias", "Ciudad de Villa de alvarez", "Ciudad Cuauhtemoc", "Navojoa", "Guaymas",
	"Minatitlan", "Cuautitlan", "Texcoco", "Hidalgo del Parral", "Tepexpan", "Tulancingo",
}

// Compiled evidence patterns, in the priority order they are evaluated.
// All matching is case-insensitive and word-boundary anchored so that a
// substring inside a longer word never matches.
var (
	// canadaZipPattern matches a Canadian postal code (letter-digit-letter,
	// optional space or hyphen, digit-letter-digit) in the city text.
	canadaZipPattern = regexp.MustCompile(`(?i)\b[ABCEGHJ-NPRSTVXY][0-9][ABCEGHJ-NPRSTV-Z](\s|-)?[0-9][ABCEGHJ-NPRSTV-Z][0-9]\b`)

	// ontarioQuebecPattern matches an ON/QC province abbreviation followed
	// by the start of a postal code. The alternation binds exactly as
	// written: a bare "ON" matches, "QC" requires the postal-code tail.
	ontarioQuebecPattern = regexp.MustCompile(`(?i)(\bON\b)|(\bQC\b)\s\b[ABCEGHJ-NPRSTVXY][0-9][ABCEGHJ-NPRSTV-Z]`)

	// canadaKeywordPattern matches Canada/major-city/province keywords in
	// the last populated address line.
	canadaKeywordPattern = regexp.MustCompile(`(?i)\bCANADA\b|\bTORONTO\b|\bONTARIO\b|\bQUEBEC\b|\bALBERTA\b|\bMONTREAL\b`)

	// canadaPlacesPattern matches the enumerated provinces/cities in the
	// city text.
	canadaPlacesPattern = regexp.MustCompile(`(?i)` + wordList(canadaPlaces))

	// canadaExcludePattern vetoes a Canada match when the city names a
	// same-named place elsewhere (London UK, an Australian address, ...).
	canadaExcludePattern = regexp.MustCompile(`(?i)\bLONDON\b|\bUK\b|\bUNIT\b|\bGBR\b|\bAUS(TRALIA)?\b`)

	// mexicoPlacesPattern matches the enumerated states/cities in the
	// city text.
	mexicoPlacesPattern = regexp.MustCompile(`(?i)` + wordList(mexicoPlaces))

	// mexicoExcludePattern vetoes a Mexico match for same-named places in
	// Spain or Italy (Guadalupe, Cordoba, Leon, ...).
	mexicoExcludePattern = regexp.MustCompile(`(?i)\bSPAIN\b|\bESPANA\b|\bITALY\b`)
)

// wordList joins place names into one word-boundary-anchored alternation.
func wordList(places []string) string {
	return `\b` + strings.Join(places, `\b|\b`) + `\b`
}

// SortByCity orders foreign records by mailing city, case-sensitive
// lexical. The sort is stable so equal cities keep insertion order. This
// ordering is preserved in the final output.
func SortByCity(records []schema.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Get(schema.MailingCity) < records[j].Get(schema.MailingCity)
	})
}

// InferCountry classifies one foreign record as Canada, Mexico or
// OtherForeign from its city text and last populated address line.
func InferCountry(record schema.Record) Category {
	city := record.Get(schema.MailingCity)

	lastAddressLine := ""
	if lines := record.CompactAddressLines(); len(lines) > 0 {
		lastAddressLine = lines[len(lines)-1]
	}

	canadaEvidence := canadaZipPattern.MatchString(city) ||
		ontarioQuebecPattern.MatchString(city) ||
		canadaKeywordPattern.MatchString(lastAddressLine) ||
		canadaPlacesPattern.MatchString(city)
	if canadaEvidence && !canadaExcludePattern.MatchString(city) {
		return Canada
	}

	if mexicoPlacesPattern.MatchString(city) && !mexicoExcludePattern.MatchString(city) {
		return Mexico
	}

	return OtherForeign
}

// InferCountries sorts the foreign pre-classification set by city, infers
// each record's country and stamps its AddressType. Returns the three
// foreign partitions; within each, records keep the city-sorted order.
func InferCountries(foreign []schema.Record) (canada, mexico, other []schema.Record) {
	SortByCity(foreign)

	for _, record := range foreign {
		category := InferCountry(record)
		record.Set(schema.AddressType, string(category))
		switch category {
		case Canada:
			canada = append(canada, record)
		case Mexico:
			mexico = append(mexico, record)
		default:
			other = append(other, record)
		}
	}
	return canada, mexico, other
}
