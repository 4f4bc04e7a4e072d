// Package registry maps platforms to their bundled template trees. The
// template files ship inside the binary via embed.FS; bundles are loaded
// once, on first use, and are read-only for the process lifetime.
package registry

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed templates
var templateFS embed.FS

// TemplateFile is one file of a platform's template tree. RelPath is the
// destination path relative to the platform output directory and may
// itself contain scalar placeholders (e.g. ${project_name}).
type TemplateFile struct {
	RelPath    string
	Raw        []byte
	Executable bool
}

// TemplateBundle is the complete, versioned template set for one
// platform. Never mutated after load; the substitution engine only
// reads it.
type TemplateBundle struct {
	Platform Platform
	Files    []TemplateFile
}

// templateSpec wires an embedded source file to its destination path.
type templateSpec struct {
	src        string
	dest       string
	executable bool
}

// bundleSpecs declares each platform's tree in emission order.
var bundleSpecs = map[Platform][]templateSpec{
	PlatformAndroid: {
		{src: "templates/android/build.gradle", dest: "build.gradle"},
		{src: "templates/android/app.build.gradle", dest: "app/build.gradle"},
		{src: "templates/android/settings.gradle", dest: "settings.gradle"},
		{src: "templates/android/gradle.properties", dest: "gradle.properties"},
		{src: "templates/android/AndroidManifest.xml", dest: "app/src/main/AndroidManifest.xml"},
		{src: "templates/android/MainActivity.java", dest: "app/src/main/java/com/pwa/wrapper/MainActivity.java"},
	},
	PlatformIOS: {
		{src: "templates/ios/AppDelegate.swift", dest: "${project_name}/AppDelegate.swift"},
		{src: "templates/ios/ViewController.swift", dest: "${project_name}/ViewController.swift"},
		{src: "templates/ios/Info.plist", dest: "${project_name}/Info.plist"},
		{src: "templates/ios/project.pbxproj", dest: "${project_name}/${project_name}.xcodeproj/project.pbxproj"},
		{src: "templates/ios/build.sh", dest: "build.sh", executable: true},
	},
	PlatformMacOS: {
		{src: "templates/macos/Info.plist", dest: "${app_name}.app/Contents/Info.plist"},
		{src: "templates/macos/main.swift", dest: "main.swift"},
		{src: "templates/macos/build.sh", dest: "build.sh", executable: true},
	},
	PlatformWindows: {
		{src: "templates/windows/project.csproj", dest: "${project_name}/${project_name}.csproj"},
		{src: "templates/windows/Program.cs", dest: "${project_name}/Program.cs"},
		{src: "templates/windows/MainWindow.cs", dest: "${project_name}/MainWindow.cs"},
		{src: "templates/windows/solution.sln", dest: "${project_name}.sln"},
		{src: "templates/windows/build.cmd", dest: "build.cmd"},
	},
}

var (
	loadOnce sync.Once
	bundles  map[Platform]*TemplateBundle
	loadErr  error
)

// TemplatesFor returns the immutable template bundle for a platform.
// Unknown platforms yield an unsupported-platform error.
func TemplatesFor(platform Platform) (*TemplateBundle, error) {
	canonical, err := ParsePlatform(string(platform))
	if err != nil {
		return nil, err
	}

	loadOnce.Do(loadBundles)
	if loadErr != nil {
		return nil, loadErr
	}

	return bundles[canonical], nil
}

func loadBundles() {
	loaded := make(map[Platform]*TemplateBundle, len(bundleSpecs))

	for platform, specs := range bundleSpecs {
		bundle := &TemplateBundle{
			Platform: platform,
			Files:    make([]TemplateFile, 0, len(specs)),
		}
		for _, spec := range specs {
			raw, err := templateFS.ReadFile(spec.src)
			if err != nil {
				loadErr = fmt.Errorf("embedded template %s missing: %w", spec.src, err)
				return
			}
			bundle.Files = append(bundle.Files, TemplateFile{
				RelPath:    spec.dest,
				Raw:        raw,
				Executable: spec.executable,
			})
		}
		loaded[platform] = bundle
	}

	bundles = loaded
}
