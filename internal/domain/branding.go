package domain

// Branding selects the product flavour the console presents itself as.
type Branding string

const (
	BrandingOKD       Branding = "okd"
	BrandingOpenShift Branding = "openshift"
	BrandingOCP       Branding = "ocp"
	BrandingOnline    Branding = "online"
	BrandingDedicated Branding = "dedicated"
	BrandingAzure     Branding = "azure"
	BrandingROSA      Branding = "rosa"
)

// ProductName returns the display name for a branding. A non-empty custom
// name always wins; unknown brandings fall back to OKD.
func ProductName(b Branding, customProductName string) string {
	if customProductName != "" {
		return customProductName
	}
	switch b {
	case BrandingOpenShift, BrandingOCP:
		return "Red Hat OpenShift"
	case BrandingOnline:
		return "Red Hat OpenShift Online"
	case BrandingDedicated:
		return "Red Hat OpenShift Dedicated"
	case BrandingAzure:
		return "Azure Red Hat OpenShift"
	case BrandingROSA:
		return "Red Hat OpenShift Service on AWS"
	default:
		return "OKD"
	}
}
