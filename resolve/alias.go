package resolve

// The upstream catalog has accumulated several generations of field names for
// the same attribute. Resolution policy is data, not code: each canonical
// field maps to an ordered list of source keys and the first non-empty value
// wins. Keep new legacy spellings here, never in the resolver logic.
var productAliases = map[string][]string{
	"code":        {"code", "productCode", "styleCode", "articleNo", "sku"},
	"title":       {"title", "productTitle", "name"},
	"tagline":     {"tagline", "subtitle", "subTitle"},
	"description": {"description", "productDescription", "longDescription"},
	"category":    {"category", "productCategory", "fabricType"},
	"supply":      {"supplyModel", "supplyType", "availability", "status"},
	"content":     {"content", "composition", "fabricContent"},
	"width_cm":    {"widthCm", "fabricWidth", "width"},
	"width_inch":  {"widthInch", "widthInches"},
	"weight_gsm":  {"weightGsm", "gsm", "fabricWeight", "weight"},
	"weight_oz":   {"weightOz", "ounces", "oz"},
	"design":      {"design", "designName", "designNo"},
	"structure":   {"structure", "weave", "construction"},
	"colors":      {"colors", "colours", "colorways", "availableColors", "color"},
	"motif":       {"motif", "motifSize", "pattern"},
	"finish":      {"finish", "finishes", "specialFinish"},
	"moq":         {"moq", "minimumOrder", "minOrderQty"},
	"moq_unit":    {"moqUnit", "orderUnit", "unit"},
	"rating":      {"rating", "reviewRating", "score"},
	"collection":  {"collection", "collectionId", "collectionName", "groupCode"},
}

// collectionAliases are the legacy spellings a sibling record may use for its
// collection reference; matching is plain string equality across all of them.
var collectionAliases = []string{"collection", "collectionId", "groupCode"}

// imageAliases are checked in order after the "images" array; legacy records
// carry up to four numbered slots.
var imageAliases = []string{"image", "image1", "image2", "image3", "image4", "mainImage"}

const maxProductImages = 4
