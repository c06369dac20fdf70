package style

// Property is a closed enumeration of property names which receive special
// treatment somewhere in the native projection. Every other name maps to
// PropertyUnknown and passes through untouched.
type Property int

const (
	PropertyUnknown Property = iota
	PropertyWidth
	PropertyHeight
	PropertyMinWidth
	PropertyMinHeight
	PropertyMaxWidth
	PropertyMaxHeight
	PropertyPadding
	PropertyPaddingTop
	PropertyPaddingBottom
	PropertyPaddingLeft
	PropertyPaddingRight
	PropertyPaddingHorizontal
	PropertyPaddingVertical
	PropertyMargin
	PropertyMarginTop
	PropertyMarginBottom
	PropertyMarginLeft
	PropertyMarginRight
	PropertyMarginHorizontal
	PropertyMarginVertical
	PropertyBorderRadius
	PropertyBorderTopLeftRadius
	PropertyBorderTopRightRadius
	PropertyBorderBottomLeftRadius
	PropertyBorderBottomRightRadius
	PropertyBorderWidth
	PropertyBorderTopWidth
	PropertyBorderBottomWidth
	PropertyBorderLeftWidth
	PropertyBorderRightWidth
	PropertyGap
	PropertyRowGap
	PropertyColumnGap
	PropertyElevation
	PropertyLineHeight
	PropertyLetterSpacing
	PropertyFontSize
	PropertyBackgroundColor
	PropertyTextAlign
	PropertyFlexDirection
	PropertyColor
)

var propertyNames = [...]string{
	PropertyUnknown:                 "",
	PropertyWidth:                   "width",
	PropertyHeight:                  "height",
	PropertyMinWidth:                "minWidth",
	PropertyMinHeight:               "minHeight",
	PropertyMaxWidth:                "maxWidth",
	PropertyMaxHeight:               "maxHeight",
	PropertyPadding:                 "padding",
	PropertyPaddingTop:              "paddingTop",
	PropertyPaddingBottom:           "paddingBottom",
	PropertyPaddingLeft:             "paddingLeft",
	PropertyPaddingRight:            "paddingRight",
	PropertyPaddingHorizontal:       "paddingHorizontal",
	PropertyPaddingVertical:         "paddingVertical",
	PropertyMargin:                  "margin",
	PropertyMarginTop:               "marginTop",
	PropertyMarginBottom:            "marginBottom",
	PropertyMarginLeft:              "marginLeft",
	PropertyMarginRight:             "marginRight",
	PropertyMarginHorizontal:        "marginHorizontal",
	PropertyMarginVertical:          "marginVertical",
	PropertyBorderRadius:            "borderRadius",
	PropertyBorderTopLeftRadius:     "borderTopLeftRadius",
	PropertyBorderTopRightRadius:    "borderTopRightRadius",
	PropertyBorderBottomLeftRadius:  "borderBottomLeftRadius",
	PropertyBorderBottomRightRadius: "borderBottomRightRadius",
	PropertyBorderWidth:             "borderWidth",
	PropertyBorderTopWidth:          "borderTopWidth",
	PropertyBorderBottomWidth:       "borderBottomWidth",
	PropertyBorderLeftWidth:         "borderLeftWidth",
	PropertyBorderRightWidth:        "borderRightWidth",
	PropertyGap:                     "gap",
	PropertyRowGap:                  "rowGap",
	PropertyColumnGap:               "columnGap",
	PropertyElevation:               "elevation",
	PropertyLineHeight:              "lineHeight",
	PropertyLetterSpacing:           "letterSpacing",
	PropertyFontSize:                "fontSize",
	PropertyBackgroundColor:         "backgroundColor",
	PropertyTextAlign:               "textAlign",
	PropertyFlexDirection:           "flexDirection",
	PropertyColor:                   "color",
}

var propertyByName = func() map[string]Property {
	m := make(map[string]Property, len(propertyNames))
	for p, name := range propertyNames {
		if name != "" {
			m[name] = Property(p)
		}
	}
	return m
}()

// ParseProperty recognizes both camel and hyphenated spelling.
func ParseProperty(name string) Property {
	if p, ok := propertyByName[name]; ok {
		return p
	}
	if p, ok := propertyByName[CamelCase(name)]; ok {
		return p
	}
	return PropertyUnknown
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return ""
	}
	return propertyNames[p]
}

// IsDimension reports properties holding a length converted to device pixels.
// Font size is scaled separately and is not included.
func (p Property) IsDimension() bool {
	return p >= PropertyWidth && p <= PropertyLetterSpacing
}

// Sides returns longhand properties a shorthand fans out to (in output
// order) or nil for non-shorthands.
func (p Property) Sides() []Property {
	switch p {
	case PropertyPadding:
		return []Property{PropertyPaddingTop, PropertyPaddingBottom, PropertyPaddingLeft, PropertyPaddingRight, PropertyPaddingHorizontal, PropertyPaddingVertical}
	case PropertyPaddingHorizontal:
		return []Property{PropertyPaddingLeft, PropertyPaddingRight}
	case PropertyPaddingVertical:
		return []Property{PropertyPaddingTop, PropertyPaddingBottom}
	case PropertyMargin:
		return []Property{PropertyMarginTop, PropertyMarginBottom, PropertyMarginLeft, PropertyMarginRight, PropertyMarginHorizontal, PropertyMarginVertical}
	case PropertyMarginHorizontal:
		return []Property{PropertyMarginLeft, PropertyMarginRight}
	case PropertyMarginVertical:
		return []Property{PropertyMarginTop, PropertyMarginBottom}
	case PropertyBorderRadius:
		return []Property{PropertyBorderTopLeftRadius, PropertyBorderTopRightRadius, PropertyBorderBottomLeftRadius, PropertyBorderBottomRightRadius}
	}
	return nil
}
