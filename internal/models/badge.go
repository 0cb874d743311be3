package models

// BadgeAssets maps every known achievement slug to its badge image.
// Image URLs are static assets, not derived from probe responses.
var BadgeAssets = map[string]string{
	"pull-shark":                    "https://github.githubassets.com/assets/pull-shark-default-498c279a747d.png",
	"starstruck":                    "https://github.githubassets.com/assets/starstruck-default--light-medium-65b31ef2251e.png",
	"pair-extraordinaire":           "https://github.githubassets.com/assets/pair-extraordinaire-default-579438a20e01.png",
	"galaxy-brain":                  "https://github.githubassets.com/assets/galaxy-brain-default-847262c21056.png",
	"yolo":                          "https://github.githubassets.com/assets/yolo-default-be0bbff04951.png",
	"quickdraw":                     "https://github.githubassets.com/assets/quickdraw-default--light-medium-5450fadcbe37.png",
	"highlight":                     "https://github.githubassets.com/assets/highlight-default--light-medium-30e41ef7e6e7.png",
	"community":                     "https://github.githubassets.com/assets/community-default-4c5bc57b9b55.png",
	"deep-diver":                    "https://github.githubassets.com/assets/deep-diver-default--light-medium-a7be3c095c3d.png",
	"arctic-code-vault-contributor": "https://github.githubassets.com/assets/arctic-code-vault-contributor-default-f5b6474c6028.png",
	"public-sponsor":                "https://github.githubassets.com/assets/public-sponsor-default-4e30fe60271d.png",
	"heart-on-your-sleeve":          "https://github.githubassets.com/assets/heart-on-your-sleeve-default-28aa2b2f7ffb.png",
	"open-sourcerer":                "https://github.githubassets.com/assets/open-sourcerer-default-64b1f529dcdb.png",
}
