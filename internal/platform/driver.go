package platform

import "fmt"

// DriverPlatform maps the detected OS and architecture onto the platform
// identifier the download catalog uses for chromedriver builds.
func (i *Info) DriverPlatform() (string, error) {
	switch i.OS {
	case "linux":
		if i.Arch == "amd64" {
			return PlatformLinux64, nil
		}
	case "darwin":
		switch i.Arch {
		case "arm64":
			return PlatformMacARM64, nil
		case "amd64":
			return PlatformMacX64, nil
		}
	case "windows":
		switch i.Arch {
		case "amd64", "arm64":
			// arm64 Windows runs the x64 driver through emulation.
			return PlatformWin64, nil
		case "386":
			return PlatformWin32, nil
		}
	}
	return "", fmt.Errorf("no chromedriver build for %s/%s", i.OS, i.Arch)
}

// DriverFilename returns the chromedriver executable name for this platform.
func (i *Info) DriverFilename() string {
	if i.IsWindows() {
		return "chromedriver.exe"
	}
	return "chromedriver"
}
